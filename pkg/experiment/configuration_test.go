package experiment

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/jobshop-sim/jobshop/pkg/simulate"
)

func TestConfigurations(t *testing.T) {
	Convey("The default sweep covers the four shop configurations", t, func() {
		configs := DefaultConfigurations()
		So(configs, ShouldHaveLength, 4)

		names := []string{}
		for _, config := range configs {
			names = append(names, config.Name)
		}
		So(names, ShouldResemble,
			[]string{"baseline", "add-new-machines", "double-capacity", "double-speed"})

		Convey("Every configuration is a valid simulation setup", func() {
			for _, config := range configs {
				_, err := simulate.Run(simulate.Config{
					TargetProducts: 1,
					GenerationRate: 1.0 / 240.0,
					ProductTypes:   config.ProductTypes,
					Machines:       config.Machines,
				})
				So(err, ShouldBeNil)
			}
		})
	})

	Convey("The baseline shop matches the reference parameters", t, func() {
		config, err := ConfigurationByName("baseline")
		So(err, ShouldBeNil)

		So(config.Machines, ShouldResemble, []simulate.MachineSpec{
			{Name: "A", Capacity: 3},
			{Name: "B", Capacity: 2},
		})
		So(config.ProductTypes, ShouldHaveLength, 2)
		So(config.ProductTypes[0].ProcessingTimes["A"], ShouldEqual, 15*60)
		So(config.ProductTypes[1].ProcessingTimes["B"], ShouldEqual, 13*60)
		So(config.ProductTypes[0].Probability, ShouldAlmostEqual, 2.0/3.0)
	})

	Convey("The added machines serve the original groups", t, func() {
		config, err := ConfigurationByName("add-new-machines")
		So(err, ShouldBeNil)
		So(config.Machines, ShouldHaveLength, 4)
		So(config.Machines[2].Name, ShouldEqual, "A_new")
		So(config.Machines[2].Group, ShouldEqual, "A")
	})

	Convey("Double speed halves the processing times", t, func() {
		config, err := ConfigurationByName("double-speed")
		So(err, ShouldBeNil)
		So(config.ProductTypes[0].ProcessingTimes["A"], ShouldEqual, 7.5*60)
		So(config.ProductTypes[1].ProcessingTimes["B"], ShouldEqual, 6.5*60)
	})

	Convey("An unknown configuration name is an error", t, func() {
		_, err := ConfigurationByName("tripled")
		So(err, ShouldNotBeNil)
	})

	Convey("The default sweep axes match the chart columns", t, func() {
		So(DefaultStrategies(), ShouldResemble,
			[]simulate.Strategy{simulate.StrategyFIFO, simulate.StrategyPriority})
		So(DefaultMaxWaits(), ShouldResemble,
			[]time.Duration{0, 3 * time.Minute, 6 * time.Minute})
	})
}

func TestSettingsFromFlags(t *testing.T) {
	Convey("Without any overrides the settings mirror the flag defaults", t, func() {
		settings, err := SettingsFromFlags()
		So(err, ShouldBeNil)

		So(settings.TargetProducts, ShouldEqual, 500)
		So(settings.GenerationInterval, ShouldEqual, 4*time.Minute)
		So(settings.RoutingTimePerSize, ShouldEqual, 30*time.Second)
		So(settings.Configurations, ShouldHaveLength, 4)
		So(settings.Strategies, ShouldHaveLength, 2)
		So(settings.MaxWaits, ShouldResemble,
			[]time.Duration{0, 3 * time.Minute, 6 * time.Minute})
		So(settings.maxWaitLabels(), ShouldResemble, []string{"0", "3", "6"})
	})
}
