package output

import (
	"fmt"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// Format specifies the output serialization for value-printing commands.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a string into a Format. Unknown or empty strings
// default to YAML.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// ValidFormats returns the accepted format strings.
func ValidFormats() []string {
	return []string{"yaml", "json"}
}

// Marshal serializes v in the given format. JSON output goes through a
// YAML round trip so map keys serialize identically in both formats.
func Marshal(v any, f Format) ([]byte, error) {
	data, err := yamlv3.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling value: %w", err)
	}
	if f != FormatJSON {
		return data, nil
	}

	jsonData, err := sigsyaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return append(jsonData, '\n'), nil
}
