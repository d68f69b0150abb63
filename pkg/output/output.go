package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/zfogg/streamline/pkg/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatText  OutputFormat = "text"
)

// Out receives everything this package prints.
var Out io.Writer = color.Output

// SetOutput redirects printing to w and returns a func restoring the
// previous writer.
func SetOutput(w io.Writer) func() {
	prev := Out
	Out = w
	return func() { Out = prev }
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() OutputFormat {
	switch config.GetString("output.format") {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// ValidateOutputFormat checks if format is valid
func ValidateOutputFormat(format string) bool {
	return format == "json" || format == "table" || format == "text"
}

// Field is one labelled line of a record.
type Field struct {
	Key   string
	Value string
}

// PrintList prints items as JSON in json mode, otherwise as a table of
// the pre-rendered rows.
func PrintList(items interface{}, headers []string, rows [][]string) error {
	if GetOutputFormat() == FormatJSON {
		return PrintJSON(items)
	}
	if len(rows) == 0 {
		PrintInfo("Nothing to show.")
		return nil
	}
	PrintTable(headers, rows)
	return nil
}

// PrintRecord prints data as JSON in json mode, otherwise as aligned
// key/value lines under title.
func PrintRecord(title string, data interface{}, fields []Field) error {
	switch GetOutputFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatTable:
		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			rows = append(rows, []string{f.Key, f.Value})
		}
		PrintTable([]string{"Field", "Value"}, rows)
		return nil
	default:
		printFields(title, fields)
		return nil
	}
}

// PrintJSON writes data as indented JSON.
func PrintJSON(data interface{}) error {
	s, err := FormatAsPrettyJSON(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(Out, s)
	return err
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(Out, msg+"\n", args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(Out, "Error: "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(Out, msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(Out, "Warning: "+msg+"\n", args...)
}

// PrintHeading prints a bold section title.
func PrintHeading(title string) {
	color.New(color.Bold, color.Underline).Fprintln(Out, title)
}

func printFields(title string, fields []Field) {
	if title != "" {
		PrintHeading(title)
	}
	width := 0
	for _, f := range fields {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}
	bold := color.New(color.Bold)
	for _, f := range fields {
		bold.Fprintf(Out, "%-*s  ", width+1, f.Key+":")
		fmt.Fprintln(Out, f.Value)
	}
}

// PrintTable writes a tab-aligned table with bold headers.
func PrintTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)

	for i, h := range headers {
		bold.Fprint(w, h)
		if i < len(headers)-1 {
			fmt.Fprint(w, "\t")
		}
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(w, cell)
			if i < len(row)-1 {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}

	w.Flush()
}

// FormatAsJSON converts data to a compact JSON string
func FormatAsJSON(data interface{}) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatAsPrettyJSON converts data to an indented JSON string
func FormatAsPrettyJSON(data interface{}) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
