// Package render writes command output to stdout in the selected format.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

// Format selects how records are written.
type Format string

const (
	FormatDebug Format = "debug"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat resolves an output name; empty selects fallback.
func ParseFormat(raw string, fallback Format) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return fallback, nil
	case FormatDebug, FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output %q (want debug, table or json)", raw)
	}
}

var dumper = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Debug dumps each value in order with types and dereferenced pointers.
func Debug(w io.Writer, v ...any) error {
	for _, item := range v {
		dumper.Fdump(w, item)
	}
	return nil
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var labelColor = color.New(color.FgCyan, color.Bold)

// Labeled writes "label: text" with a highlighted label.
func Labeled(w io.Writer, label, text string) error {
	if _, err := labelColor.Fprint(w, label+":"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, " %s\n", text)
	return err
}
