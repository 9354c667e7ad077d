package source

import (
	"encoding/csv"
	"os"
)

// CSV reads every field of a comma separated file as one cell. The format has
// a single table, so the table selector is ignored.
type CSV struct{}

func (c CSV) Cells(path string, table string) (cells []string, err error) {
	errStat := statSource(path)
	if errStat != nil {
		err = errStat
		return
	}
	f, errOpen := os.Open(path)
	if errOpen != nil {
		err = errOpen
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	// rows do not have to be rectangular
	r.FieldsPerRecord = -1
	records, errRead := r.ReadAll()
	if errRead != nil {
		err = errRead
		return
	}
	for _, record := range records {
		for _, field := range record {
			if field != "" {
				cells = append(cells, field)
			}
		}
	}
	return
}
