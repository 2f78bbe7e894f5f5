package conf

import (
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

const stringListDelimiter = ","

// StringListVar is a custom kingpin parser which resolves a flag's parameters
// consisting of a string slice delimited by `stringListDelimiter`.
// For instance for a flag defined like this:
// `flag = StringList(kingpin.Flag("flag_name", "help"))`
//
// When the user specifies options `--flag_name=A,B,C --flag_name=D`, the
// `flag` variable will be a slice with the A,B,C,D items.
type StringListVar []string

// Set parses the input string and appends it to the slice. Implements kingpin.Value.
func (s *StringListVar) Set(value string) error {
	*s = append(*s, strings.Split(value, stringListDelimiter)...)
	return nil
}

// String returns string value from StringListVar. Implements kingpin.Value.
func (s *StringListVar) String() string {
	return strings.Join(*s, stringListDelimiter)
}

// IsCumulative implements the optional kingpin interface for flags that can be repeated.
func (s *StringListVar) IsCumulative() bool {
	return true
}

// StringList is a helper for defining kingpin flags.
func StringList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*StringListVar)(target))
	return
}
