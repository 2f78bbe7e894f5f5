package experiment

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jobshop-sim/jobshop/pkg/conf"
	"github.com/jobshop-sim/jobshop/pkg/simulate"
)

var (
	outputDirFlag = conf.NewStringFlag(
		"output_dir",
		"Root directory where experiment run directories are created.",
		"jobshop_output")
	dataDirFlag = conf.NewStringFlag(
		"data_dir",
		"Directory with existing output CSV files. Used with --plots_only.",
		"")
	plotsOnlyFlag = conf.NewBoolFlag(
		"plots_only",
		"Skip the simulations and render charts from CSV files found in --data_dir.",
		false)
	summaryFlag = conf.NewBoolFlag(
		"summary",
		"Print flow time statistics tables to stdout.",
		false)

	targetProductsFlag = conf.NewIntFlag(
		"target_products",
		"Number of finished products required to end each simulation.",
		500)
	generationIntervalFlag = conf.NewDurationFlag(
		"generation_interval",
		"Average time between generated products.",
		4*time.Minute)
	seedFlag = conf.NewInt64Flag(
		"seed",
		"Random seed for the product generator.",
		0)
	routingTimeFlag = conf.NewDurationFlag(
		"routing_time",
		"Router dispatch time per unit of product size.",
		30*time.Second)
	shelfTimeFlag = conf.NewDurationFlag(
		"shelf_time",
		"Router queue residency after which a product spoils. Zero disables spoilage.",
		0)

	configsFlag = conf.NewSliceFlag(
		"config",
		"Shop configuration to simulate. Can be given several times (--config=baseline --config=double-speed).",
		"baseline", "add-new-machines", "double-capacity", "double-speed")
	strategiesFlag = conf.NewSliceFlag(
		"strategy",
		"Dispatching strategy to simulate: fifo or priority. Can be given several times.",
		"fifo", "priority")
	maxWaitsFlag = conf.NewSliceFlag(
		"max_wait",
		"Machine max-wait values in minutes, one CSV column each.",
		"0", "3", "6")
)

// SettingsFromFlags builds experiment settings from the parsed configuration.
func SettingsFromFlags() (Settings, error) {
	settings := Settings{
		OutputDir:          outputDirFlag.Value(),
		DataDir:            dataDirFlag.Value(),
		PlotsOnly:          plotsOnlyFlag.Value(),
		PrintSummary:       summaryFlag.Value(),
		TargetProducts:     targetProductsFlag.Value(),
		GenerationInterval: generationIntervalFlag.Value(),
		Seed:               seedFlag.Value(),
		RoutingTimePerSize: routingTimeFlag.Value(),
		ShelfTime:          shelfTimeFlag.Value(),
	}

	for _, name := range configsFlag.Value() {
		config, err := ConfigurationByName(name)
		if err != nil {
			return Settings{}, err
		}
		settings.Configurations = append(settings.Configurations, config)
	}

	for _, name := range strategiesFlag.Value() {
		strategy, err := simulate.ParseStrategy(name)
		if err != nil {
			return Settings{}, err
		}
		settings.Strategies = append(settings.Strategies, strategy)
	}

	for _, raw := range maxWaitsFlag.Value() {
		minutes, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || minutes < 0 {
			return Settings{}, errors.Errorf("invalid max wait value %q", raw)
		}
		settings.MaxWaits = append(settings.MaxWaits,
			time.Duration(minutes*float64(time.Minute)))
	}

	return settings, nil
}
