package conf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// envPrefix is prepended to upper-cased flag names to form environment
// variable names, e.g. "output_dir" becomes "JOBSHOP_OUTPUT_DIR".
const envPrefix = "JOBSHOP"

var (
	app = kingpin.New("jobshop", "No help available")

	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
// We need to expose this function so other packages can set the app help.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
// We need to expose this function so other packages can set the app name.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the configured level, it falls back to the default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// LoadEnvFile reads a dotenv file and loads its entries into the process
// environment without overriding variables that are already set. A missing
// file is not an error; flag defaults apply then.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "could not load env file %q", path)
	}
	return nil
}

// ParseFlags parses both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	_, err := app.Parse(os.Args[1:])
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse command line flags")
}

// ParseEnv parses the environment for arguments.
func ParseEnv() error {
	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse environment flags")
}

// flagDefinition carries current, default, name and description for one flag.
type flagDefinition struct {
	Name, Value, Default, Help string
}

// getFlagsDefinition returns the definition of every registered flag.
// Note: order follows kingpin's flag model because it logically groups flags.
func getFlagsDefinition() (flags []flagDefinition) {
	for _, flag := range app.Model().Flags {
		// Skip kingpin builtin flags that aren't compatible with environment
		// based configuration.
		if strings.Contains(flag.Name, "-") {
			continue
		}

		registered, ok := definedFlags[flag.Name]
		if !ok {
			continue
		}

		flags = append(flags, flagDefinition{
			Name:    flag.Name,
			Help:    flag.Help,
			Default: strings.Join(flag.Default, ","),
			Value:   registered.currentValue(),
		})
	}

	return flags
}

// GetFlags returns flags as a map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range getFlagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values
// overwritten by the given flagMap. Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range getFlagsDefinition() {
		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		// Override current values with provided from flagMap.
		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%v\n", envPrefix, strings.ToUpper(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}
