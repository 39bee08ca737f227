package domain

import (
	"math"
	"time"
)

// AssetPrice is one daily closing-price observation for a single ticker.
type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// PriceTable is a date-by-instrument grid of closing prices. Dates are
// chronological and Columns keep symbol-map order. After cleaning, no
// cell is NaN.
type PriceTable struct {
	Dates   []time.Time
	Columns []string
	Series  map[string][]float64
}

func NewPriceTable(dates []time.Time, columns []string) PriceTable {
	series := make(map[string][]float64, len(columns))
	for _, c := range columns {
		col := make([]float64, len(dates))
		for i := range col {
			col[i] = math.NaN()
		}
		series[c] = col
	}
	return PriceTable{Dates: dates, Columns: columns, Series: series}
}

// EmptyPriceTable is the fetcher's only failure signal.
func EmptyPriceTable() PriceTable {
	return PriceTable{Series: map[string][]float64{}}
}

func (t PriceTable) IsEmpty() bool {
	return len(t.Dates) == 0 || len(t.Columns) == 0
}

func (t PriceTable) NumRows() int {
	return len(t.Dates)
}

func (t PriceTable) Column(name string) ([]float64, bool) {
	col, ok := t.Series[name]
	return col, ok
}

// LastValue returns the most recent observation for the column.
func (t PriceTable) LastValue(name string) (float64, bool) {
	col, ok := t.Series[name]
	if !ok || len(col) == 0 {
		return 0, false
	}
	return col[len(col)-1], true
}

// FirstValue returns the oldest observation for the column.
func (t PriceTable) FirstValue(name string) (float64, bool) {
	col, ok := t.Series[name]
	if !ok || len(col) == 0 {
		return 0, false
	}
	return col[0], true
}

// ForwardFill replaces each NaN cell with the nearest earlier
// observation in the same column. Leading NaNs are left in place.
func (t PriceTable) ForwardFill() {
	for _, c := range t.Columns {
		col := t.Series[c]
		for i := 1; i < len(col); i++ {
			if math.IsNaN(col[i]) && !math.IsNaN(col[i-1]) {
				col[i] = col[i-1]
			}
		}
	}
}

// DropIncompleteRows removes every row that still has a NaN in any
// column, keeping chronological order. With forward-fill applied first
// this strips the leading rows before every instrument has traded.
func (t PriceTable) DropIncompleteRows() PriceTable {
	keep := make([]int, 0, len(t.Dates))
	for i := range t.Dates {
		complete := true
		for _, c := range t.Columns {
			if math.IsNaN(t.Series[c][i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	out := PriceTable{
		Dates:   make([]time.Time, 0, len(keep)),
		Columns: t.Columns,
		Series:  make(map[string][]float64, len(t.Columns)),
	}
	for _, i := range keep {
		out.Dates = append(out.Dates, t.Dates[i])
	}
	for _, c := range t.Columns {
		col := make([]float64, 0, len(keep))
		for _, i := range keep {
			col = append(col, t.Series[c][i])
		}
		out.Series[c] = col
	}
	return out
}
