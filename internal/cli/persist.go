package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/idelchi/extstat/internal/extstat"
)

// OutputFile is the name of the statistics file written to the working directory.
const OutputFile = "file_size_statistics.txt"

// IndentStep is the number of spaces per nesting level in the statistics file.
const IndentStep = 2

//nolint:gochecknoglobals // Frozen encoder config
var jsonAPI = jsoniter.Config{
	IndentionStep: IndentStep,
	EscapeHTML:    false,
}.Froze()

// validUTF8 replaces invalid byte sequences, which filenames may contain,
// so the document stays UTF-8. jsoniter copies such bytes through as-is.
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// EncodeReport writes report as an indented JSON object, keeping key order.
// Integer values are written as numbers and string values as strings.
func EncodeReport[V extstat.Value](report *extstat.Report[V], writer io.Writer) error {
	stream := jsonAPI.BorrowStream(writer)
	defer jsonAPI.ReturnStream(stream)

	if report.Len() == 0 {
		stream.WriteEmptyObject()
	} else {
		stream.WriteObjectStart()

		first := true
		for ext, v := range report.All() {
			if !first {
				stream.WriteMore()
			}

			first = false

			stream.WriteObjectField(validUTF8(ext))

			switch val := any(v).(type) {
			case int64:
				stream.WriteInt64(val)
			case string:
				stream.WriteString(validUTF8(val))
			}
		}

		stream.WriteObjectEnd()
	}

	stream.WriteRaw("\n")

	if err := stream.Flush(); err != nil {
		return err
	}

	return stream.Error
}

// WriteFile writes report to path, replacing any existing file.
func WriteFile[V extstat.Value](path string, report *extstat.Report[V]) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %w", extstat.ErrOutputWrite, path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %q: %w", extstat.ErrOutputWrite, path, cerr)
		}
	}()

	if err := EncodeReport(report, file); err != nil {
		return fmt.Errorf("%w: writing %q: %w", extstat.ErrOutputWrite, path, err)
	}

	return nil
}
