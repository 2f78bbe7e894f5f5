package visualization

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeData(t *testing.T, dir, config, strategy, content string) {
	t.Helper()
	path := filepath.Join(dir, DataFileName(config, strategy))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFileNames(t *testing.T) {
	Convey("File names follow the output conventions", t, func() {
		So(DataFileName("baseline", "fifo"), ShouldEqual, "output_baseline_fifo.csv")
		So(PlotFileName("products", "double-speed", "priority"), ShouldEqual,
			"plot_products_double-speed_priority.svg")
		So(PlotFileName("box", "baseline", "fifo"), ShouldEqual, "plot_box_baseline_fifo.svg")
		So(PlotFileName("freq", "baseline", "fifo"), ShouldEqual, "plot_freq_baseline_fifo.svg")
	})
}

func TestLoadDataset(t *testing.T) {
	labels := []string{"0", "3", "6"}

	Convey("With a well-formed flow time file", t, func() {
		dir := t.TempDir()
		writeData(t, dir, "baseline", "fifo",
			"0, 10.500000, 12.000000, 15.250000\n"+
				"1, 11.000000, 13.500000, 16.000000\n")

		ds, err := LoadDataset(dir, "baseline", "fifo", labels)
		So(err, ShouldBeNil)

		Convey("Every column becomes one series", func() {
			So(ds.Config, ShouldEqual, "baseline")
			So(ds.Strategy, ShouldEqual, "fifo")
			So(ds.Labels, ShouldResemble, labels)
			So(ds.Series, ShouldResemble, [][]float64{
				{10.5, 11.0},
				{12.0, 13.5},
				{15.25, 16.0},
			})
			So(ds.rows(), ShouldEqual, 2)
		})
	})

	Convey("Blank lines are skipped", t, func() {
		dir := t.TempDir()
		writeData(t, dir, "baseline", "fifo", "0, 1.0, 2.0, 3.0\n\n1, 4.0, 5.0, 6.0\n")

		ds, err := LoadDataset(dir, "baseline", "fifo", labels)
		So(err, ShouldBeNil)
		So(ds.rows(), ShouldEqual, 2)
	})

	Convey("A missing file is reported", t, func() {
		_, err := LoadDataset(t.TempDir(), "baseline", "fifo", labels)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "could not open flow time data")
	})

	Convey("A row with the wrong column count is reported with its line", t, func() {
		dir := t.TempDir()
		writeData(t, dir, "baseline", "fifo", "0, 1.0, 2.0, 3.0\n1, 4.0, 5.0\n")

		_, err := LoadDataset(dir, "baseline", "fifo", labels)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, ":2: expected 4 columns, got 3")
	})

	Convey("A malformed flow time is reported with its line", t, func() {
		dir := t.TempDir()
		writeData(t, dir, "baseline", "fifo", "0, 1.0, oops, 3.0\n")

		_, err := LoadDataset(dir, "baseline", "fifo", labels)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, ":1: malformed flow time")
	})

	Convey("An empty file is reported", t, func() {
		dir := t.TempDir()
		writeData(t, dir, "baseline", "fifo", "")

		_, err := LoadDataset(dir, "baseline", "fifo", labels)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "holds no flow time rows")
	})
}
