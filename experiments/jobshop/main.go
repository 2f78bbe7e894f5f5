package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jobshop-sim/jobshop/pkg/conf"
	"github.com/jobshop-sim/jobshop/pkg/experiment"
	"github.com/jobshop-sim/jobshop/pkg/utils/errutil"
)

func main() {
	conf.SetAppName("jobshop")
	conf.SetHelp(`Jobshop sweeps a flexible job shop simulation over shop configurations,
dispatching strategies and machine max-wait values, writes per-product flow
times as CSV and renders them as SVG charts (per-product bars, box plots and
flow time histograms).`)

	// A dotenv file may predefine any JOBSHOP_* variable.
	errutil.Check(conf.LoadEnvFile(".env"))
	errutil.Check(conf.ParseFlags())
	logrus.SetLevel(conf.LogLevel())

	settings, err := experiment.SettingsFromFlags()
	errutil.Check(err)

	if settings.PlotsOnly {
		dir := settings.DataDir
		if dir == "" {
			dir = "."
		}
		errutil.CheckWithContext(experiment.RenderExisting(dir, settings),
			"rendering existing flow time data failed")
		return
	}

	exp, err := experiment.New(settings)
	errutil.Check(err)
	defer exp.Finalize()

	errutil.CheckWithContext(exp.Run(), "experiment failed")
	fmt.Println(exp.ID)
}
