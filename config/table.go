package config

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/lixenwraith/orbits/body"
)

// Table column layout: one body per row, whitespace separated, '#' comments
const (
	colDistanceAU = iota
	colVelocity
	colMass
	colRadius
	colReference
	tableColumns
)

// tableColors cycles over rows of a numeric table, which carries no color column
var tableColors = []body.Color{
	body.White, body.Red, body.Gold, body.Green, body.Maroon,
	body.Orange, body.Yellow, body.Turquoise, body.Blue, body.Purple,
}

// ReadTable loads a numeric body table
// Columns: distanceAU, velocity (m/s), mass (kg), radius (m), reference row index (-1 or own row for absolute)
// Bodies are unnamed and take their default "Body #<row>" names
func ReadTable(fname string) ([]body.Record, error) {
	idxs := make([]int, tableColumns)
	for i := range idxs {
		idxs[i] = i
	}
	cols, err := table.ReadTable(fname, idxs, nil)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", fname, err)
	}
	return tableRecords(cols)
}

// tableRecords converts column-major table data into records
func tableRecords(cols [][]float64) ([]body.Record, error) {
	if len(cols) != tableColumns {
		return nil, fmt.Errorf("%w: table has %d columns, want %d", body.ErrInvalidRecord, len(cols), tableColumns)
	}
	n := len(cols[0])
	if n == 0 {
		return nil, ErrNoBodies
	}

	records := make([]body.Record, n)
	for row := 0; row < n; row++ {
		ref := cols[colReference][row]
		if ref != math.Trunc(ref) {
			return nil, fmt.Errorf("%w: row %d has non-integer reference %g", body.ErrInvalidRecord, row, ref)
		}

		r := body.Record{
			DistanceAU: cols[colDistanceAU][row],
			Velocity:   cols[colVelocity][row],
			Mass:       cols[colMass][row],
			Radius:     cols[colRadius][row],
			Color:      tableColors[row%len(tableColors)],
		}
		if ref >= 0 && int(ref) != row {
			r.Reference = defaultName(int(ref))
		}
		records[row] = r
	}
	return records, nil
}

// defaultName mirrors the name body.New assigns to unnamed bodies
func defaultName(id int) string {
	return fmt.Sprintf("Body #%d", id)
}
