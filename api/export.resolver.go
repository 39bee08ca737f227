package api

import (
	"fmt"
	"time"

	"marketintel/internal/app"
	"marketintel/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type priceExportRow struct {
	Date       string  `csv:"date"`
	Instrument string  `csv:"instrument"`
	Close      float64 `csv:"close"`
}

// exportTable streams the cleaned price table as long-format CSV.
// ?set=macro (default) or ?set=sectors.
func (m ApiHandler) exportTable(c *gin.Context) {
	set := c.DefaultQuery("set", "macro")

	var symbolMap domain.SymbolMap
	switch set {
	case "macro":
		symbolMap = domain.MacroSymbolMap()
	case "sectors":
		symbolMap = domain.SectorSymbolMap()
	default:
		returnErrorJsonCode(fmt.Errorf("unknown table set %q", set), c, 400)
		return
	}

	table := m.MarketDataService.FetchClean(c, symbolMap)
	if table.IsEmpty() {
		returnErrorJsonCode(app.ErrNoData, c, 503)
		return
	}

	rows := make([]priceExportRow, 0, table.NumRows()*len(table.Columns))
	for i, date := range table.Dates {
		for _, name := range table.Columns {
			rows = append(rows, priceExportRow{
				Date:       date.Format(time.DateOnly),
				Instrument: name,
				Close:      table.Series[name][i],
			})
		}
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", set))
	c.Data(200, "text/csv; charset=utf-8", []byte(out))
}
