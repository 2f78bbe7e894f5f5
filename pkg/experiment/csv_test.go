package experiment

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteFlowTimes(t *testing.T) {
	Convey("While writing flow time CSV files", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "output_baseline_fifo.csv")

		Convey("Rows follow the exact column convention", func() {
			columns := [][]float64{
				{12.5, 30},
				{1, 2},
				{5.25, 60.125},
			}
			So(WriteFlowTimes(path, columns, 2), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual,
				"0, 12.500000, 1.000000, 5.250000\n"+
					"1, 30.000000, 2.000000, 60.125000\n")
		})

		Convey("Surplus products beyond the requested rows are dropped", func() {
			So(WriteFlowTimes(path, [][]float64{{1, 2, 3}}, 2), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "0, 1.000000\n1, 2.000000\n")
		})

		Convey("A column with fewer products than rows is an error", func() {
			err := WriteFlowTimes(path, [][]float64{{1, 2}, {3}}, 2)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did not keep up")
		})

		Convey("No columns is an error", func() {
			So(WriteFlowTimes(path, nil, 2), ShouldNotBeNil)
		})
	})
}
