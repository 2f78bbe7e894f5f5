package visualization

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Config:   "baseline",
		Strategy: "fifo",
		Labels:   []string{"0", "3", "6"},
		Series: [][]float64{
			{10.5, 11.0, 12.5, 9.0},
			{12.0, 13.5, 14.0, 11.5},
			{15.25, 16.0, 17.5, 14.0},
		},
	}
}

func TestRenderAll(t *testing.T) {
	Convey("While rendering all charts of a dataset", t, func() {
		dir := t.TempDir()
		ds := sampleDataset()

		So(RenderAll(dir, ds), ShouldBeNil)

		Convey("The three conventional SVG files are written", func() {
			titles := map[string]string{
				"products": "Flow Time (config=baseline, strategy=fifo)",
				"box":      "Flow Time Distribution (config=baseline, strategy=fifo)",
				"freq":     "Frequency of flow times (config=baseline, strategy=fifo)",
			}
			for kind, title := range titles {
				data, err := os.ReadFile(filepath.Join(dir, PlotFileName(kind, "baseline", "fifo")))
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "<svg")
				So(string(data), ShouldContainSubstring, title)
			}
		})
	})

	Convey("Rendering into a missing directory fails", t, func() {
		dir := filepath.Join(t.TempDir(), "missing")
		So(RenderAll(dir, sampleDataset()), ShouldNotBeNil)
	})
}

func TestFrequencyHistogram(t *testing.T) {
	Convey("Flow times are binned into fixed 5-minute intervals", t, func() {
		hist, err := frequencyHistogram([]float64{1.0, 2.0, 7.0})
		So(err, ShouldBeNil)

		Convey("Bin edges sit on multiples of the bin width", func() {
			So(hist.Bins, ShouldHaveLength, 2)
			So(hist.Bins[0].Min, ShouldEqual, 0.0)
			So(hist.Bins[0].Max, ShouldEqual, 5.0)
			So(hist.Bins[1].Min, ShouldEqual, 5.0)
			So(hist.Bins[1].Max, ShouldEqual, 10.0)
		})

		Convey("Each product weighs one in its interval", func() {
			So(hist.Bins[0].Weight, ShouldEqual, 2.0)
			So(hist.Bins[1].Weight, ShouldEqual, 1.0)
		})
	})

	Convey("A series within the first interval still gets one full bin", t, func() {
		hist, err := frequencyHistogram([]float64{1.0, 4.0})
		So(err, ShouldBeNil)
		So(hist.Bins, ShouldHaveLength, 1)
		So(hist.Bins[0].Min, ShouldEqual, 0.0)
		So(hist.Bins[0].Max, ShouldEqual, 5.0)
		So(hist.Bins[0].Weight, ShouldEqual, 2.0)
	})
}
