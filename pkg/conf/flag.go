package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag should have a method for creating its `envName` from its name,
// a `clear` method for clearing the corresponding environment variable, and
// a `currentValue` serialization used by config dumping.
type flagType interface {
	envName() string
	clear()
	currentValue() string
}

// definedFlags is a package variable which stores all the defined flags. It helps to find
// duplicates when defining a flag with the same name.
var definedFlags = map[string]flagType{}

// cliAndEnvFlag represents an option's definition from CLI and environment
// variable. It stores generic data for each defined flag.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic("This flag was already defined. Flag definition lacks a duplicate check.")
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

// envName returns the flag name converted to a jobshop environment variable
// name. For instance: "output_dir" will be "JOBSHOP_OUTPUT_DIR".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(f.Model().Name))
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*StringFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.String()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

func (s *StringFlag) currentValue() string { return s.Value() }

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*IntFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.Int()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

func (i *IntFlag) currentValue() string { return strconv.Itoa(i.Value()) }

// Int64Flag represents flag with int64 value.
type Int64Flag struct {
	*cliAndEnvFlag
	defaultValue int64
	value        *int64
}

// NewInt64Flag is a constructor of Int64Flag struct.
func NewInt64Flag(flagName string, description string, defaultValue int64) *Int64Flag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*Int64Flag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &Int64Flag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatInt(defaultValue, 10)),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.Int64()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i Int64Flag) Value() int64 {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

func (i *Int64Flag) currentValue() string { return strconv.FormatInt(i.Value(), 10) }

// FloatFlag represents flag with float64 value.
type FloatFlag struct {
	*cliAndEnvFlag
	defaultValue float64
	value        *float64
}

// NewFloatFlag is a constructor of FloatFlag struct.
func NewFloatFlag(flagName string, description string, defaultValue float64) *FloatFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*FloatFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &FloatFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description,
			strconv.FormatFloat(defaultValue, 'g', -1, 64)),
		defaultValue: defaultValue,
	}

	flagDef.value = flagDef.Float64()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (f FloatFlag) Value() float64 {
	if !isEnvParsed {
		return f.defaultValue
	}

	return *f.value
}

func (f *FloatFlag) currentValue() string {
	return strconv.FormatFloat(f.Value(), 'g', -1, 64)
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*BoolFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatBool(defaultValue)),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.Bool()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}

func (b *BoolFlag) currentValue() string { return strconv.FormatBool(b.Value()) }

// DurationFlag represents flag with duration value.
type DurationFlag struct {
	*cliAndEnvFlag
	defaultValue time.Duration
	value        *time.Duration
}

// NewDurationFlag is a constructor of DurationFlag struct.
func NewDurationFlag(flagName string, description string, defaultValue time.Duration) *DurationFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*DurationFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &DurationFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue.String()),
		defaultValue:  defaultValue,
	}

	flagDef.value = flagDef.Duration()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (d DurationFlag) Value() time.Duration {
	if !isEnvParsed {
		return d.defaultValue
	}

	return *d.value
}

func (d *DurationFlag) currentValue() string { return d.Value().String() }

// SliceFlag represents flag with slice value.
type SliceFlag struct {
	*cliAndEnvFlag
	defaultValue []string
	value        *[]string
}

// NewSliceFlag is a constructor of SliceFlag struct.
func NewSliceFlag(flagName string, description string, elemsInDefaultSlice ...string) *SliceFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	if duplicatedFlag := definedFlags[flagName]; duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*SliceFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		for i, elem := range elemsInDefaultSlice {
			if flagDef.defaultValue[i] != elem {
				panic("Flag was redefined but with different default value. Unify the default.")
			}
		}
		return flagDef
	}

	flagDef := &SliceFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strings.Join(elemsInDefaultSlice, ",")),
		defaultValue:  elemsInDefaultSlice,
	}

	flagDef.value = StringList(flagDef)
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns the default slice (!)
func (s SliceFlag) Value() []string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

func (s *SliceFlag) currentValue() string { return strings.Join(s.Value(), ",") }
