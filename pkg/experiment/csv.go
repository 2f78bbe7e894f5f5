package experiment

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// WriteFlowTimes writes one flow-time column per max-wait value, in minutes,
// with one row per product:
//
//	<product index>, <column 0>, <column 1>, ...
//
// The layout is consumed by the rendering layer and must not change.
func WriteFlowTimes(path string, columns [][]float64, rows int) error {
	if len(columns) == 0 {
		return errors.New("no flow time columns to write")
	}
	for i, column := range columns {
		if len(column) < rows {
			return errors.Errorf(
				"column %d holds only %d of %d finished products; the shop did not keep up",
				i, len(column), rows)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i := 0; i < rows; i++ {
		fmt.Fprintf(w, "%d", i)
		for _, column := range columns {
			fmt.Fprintf(w, ", %5f", column[i])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}

	return file.Close()
}
