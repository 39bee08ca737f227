package domain

import "strings"

// SymbolMapping pairs a human-readable instrument name with the
// provider ticker used to fetch it.
type SymbolMapping struct {
	Name   string
	Symbol string
}

// SymbolMap is an ordered name -> ticker mapping. Order is meaningful:
// KPI cards and tie-breaks follow insertion order.
type SymbolMap []SymbolMapping

func (m SymbolMap) Names() []string {
	names := make([]string, 0, len(m))
	for _, e := range m {
		names = append(names, e.Name)
	}
	return names
}

func (m SymbolMap) Symbols() []string {
	symbols := make([]string, 0, len(m))
	for _, e := range m {
		symbols = append(symbols, e.Symbol)
	}
	return symbols
}

// NameOf maps a provider ticker back to its display name.
func (m SymbolMap) NameOf(symbol string) (string, bool) {
	for _, e := range m {
		if e.Symbol == symbol {
			return e.Name, true
		}
	}
	return "", false
}

// Fingerprint is a stable cache key for the map.
func (m SymbolMap) Fingerprint() string {
	parts := make([]string, 0, len(m))
	for _, e := range m {
		parts = append(parts, e.Name+"="+e.Symbol)
	}
	return strings.Join(parts, ",")
}

// BenchmarkName is the broad-market index every regime and correlation
// computation compares against.
const BenchmarkName = "S&P 500"

// MacroSymbolMap returns the fixed macro instrument universe.
func MacroSymbolMap() SymbolMap {
	return SymbolMap{
		{Name: "S&P 500", Symbol: "^GSPC"},
		{Name: "Nasdaq 100", Symbol: "^NDX"},
		{Name: "US 10Y Bonds", Symbol: "^TNX"},
		{Name: "Gold", Symbol: "GC=F"},
		{Name: "Oil (WTI)", Symbol: "CL=F"},
		{Name: "VIX", Symbol: "^VIX"},
		{Name: "USD Index", Symbol: "DX-Y.NYB"},
	}
}

// SectorSymbolMap returns the fixed sector proxy universe.
func SectorSymbolMap() SymbolMap {
	return SymbolMap{
		{Name: "Technology", Symbol: "XLK"},
		{Name: "Financials", Symbol: "XLF"},
		{Name: "Healthcare", Symbol: "XLV"},
		{Name: "Energy", Symbol: "XLE"},
		{Name: "Discretionary", Symbol: "XLY"},
		{Name: "Staples", Symbol: "XLP"},
		{Name: "Utilities", Symbol: "XLU"},
		{Name: "Real Estate", Symbol: "XLRE"},
	}
}

// CorrelationAssets is the fixed subset of macro instruments plotted
// against the benchmark on the rolling-correlation chart.
func CorrelationAssets() []string {
	return []string{"US 10Y Bonds", "VIX", "Gold", "USD Index"}
}
