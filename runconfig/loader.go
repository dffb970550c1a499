package runconfig

import (
	"fmt"
	"os"

	"github.com/uts-harness/runconfig/framework"
)

// Loader reads configuration documents. The zero value is ready to use and logs nothing.
type Loader struct {
	// Logger receives a line for each loaded file and a warning for each unrecognized property.
	// It may be nil.
	Logger framework.Logger
}

// Load parses a JSON or YAML document into a TestRunConfiguration.
//
// It returns a *ParseError if the document is not well-formed, or a *SchemaError if a known
// property has the wrong shape. On error the returned configuration is always nil.
func (l Loader) Load(data []byte) (*TestRunConfiguration, error) {
	jsonData, err := documentAsJSON(data)
	if err != nil {
		return nil, err
	}
	c, unknownKeys, err := readDocument(jsonData)
	if err != nil {
		return nil, err
	}
	logger := framework.OrNull(l.Logger)
	for _, key := range unknownKeys {
		logger.Printf("ignoring unrecognized configuration property %q", key)
	}
	return c, nil
}

// LoadFile reads a configuration file and calls Load.
func (l Loader) LoadFile(path string) (*TestRunConfiguration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // yes, we know the file path is a variable
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	c, err := l.Load(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %q: %w", path, err)
	}
	framework.OrNull(l.Logger).Printf("loaded configuration file %q", path)
	return c, nil
}

// Load is shorthand for Loader{}.Load.
func Load(data []byte) (*TestRunConfiguration, error) {
	return Loader{}.Load(data)
}

// LoadFile is shorthand for Loader{}.LoadFile.
func LoadFile(path string) (*TestRunConfiguration, error) {
	return Loader{}.LoadFile(path)
}
