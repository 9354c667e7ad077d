package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML reads the cells of a <table> in an HTML file. The table selector is
// the id of the table to read, empty selects the first table in the document.
type HTML struct{}

func (h HTML) Cells(path string, table string) (cells []string, err error) {
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

	doc, errDoc := goquery.NewDocumentFromReader(f)
	if errDoc != nil {
		err = errDoc
		return
	}
	selector := "table"
	if table != "" {
		selector = "table#" + table
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		err = fmt.Errorf("no table %q in %s", table, path)
		return
	}
	sel.Find("td, th").Each(func(i int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		if text != "" {
			cells = append(cells, text)
		}
	})
	return
}
