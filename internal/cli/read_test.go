package cli

import (
	"fmt"
	"os"

	"github.com/buger/jsonparser"

	"github.com/idelchi/extstat/internal/extstat"
)

// readFile parses a statistics file written by WriteFile.
// Values are returned as text: numbers verbatim, strings unescaped.
//
//nolint:varnamelen // v is standard for value
func readFile(path string) (*extstat.Formatted, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	report := extstat.NewReport[string]()

	err = jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		// ObjectEach hands keys over already unescaped.
		ext := string(key)

		var (
			v   string
			err error
		)

		switch dataType {
		case jsonparser.Number:
			v = string(value)
		case jsonparser.String:
			if v, err = jsonparser.ParseString(value); err != nil {
				return fmt.Errorf("parsing value of %q: %w", ext, err)
			}
		default:
			return fmt.Errorf("unexpected %s value for %q", dataType, ext)
		}

		report.Set(ext, v)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	return report, nil
}
