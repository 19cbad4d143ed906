package scan

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// WriteReports renders reports to w. Structured formats emit one document
// holding every report.
func WriteReports(w io.Writer, format Format, reports []*Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		for _, report := range reports {
			if err := writeTable(w, report); err != nil {
				return err
			}
		}
		return nil
	case FormatText, "":
		for _, report := range reports {
			writeText(w, report)
		}
		return nil
	}
	return fmt.Errorf("unknown output format '%s'", format)
}

func writeText(w io.Writer, report *Report) {
	fmt.Fprint(w, header(report))
	fmt.Fprintln(w)
	for _, result := range report.Results {
		fmt.Fprintln(w, result.String())
	}
	fmt.Fprintf(w, "\nScanning completed in %.2f seconds\n\n", report.Seconds)
}

func header(report *Report) string {
	line := fmt.Sprintf("* Scanning: %s *", report.Target)
	border := strings.Repeat("*", len(line))
	text := fmt.Sprintf("%s\n%s\n%s\n", border, line, border)

	if h := report.Host; h != nil {
		if h.IP != "" && h.IP != report.Target {
			text += fmt.Sprintf("Address: %s\n", h.IP)
		}
		if h.MAC != "" {
			text += fmt.Sprintf("MAC: %s %s\n", h.MAC, h.Manufacturer)
		}
		if h.Name != "" {
			text += fmt.Sprintf("Name: %s\n", h.Name)
		}
	}
	return text
}

func writeTable(w io.Writer, report *Report) error {
	fmt.Fprint(w, header(report))

	table := tablewriter.NewWriter(w)
	table.Header("Port", "State", "Service", "Banner")
	for _, result := range report.Results {
		if err := table.Append([]string{
			strconv.Itoa(int(result.Port)) + "/tcp",
			result.Status.String(),
			result.Service,
			firstLine(result.Banner),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d ports scanned, %d open, completed in %.2f seconds\n\n",
		report.Scanned, len(report.Results), report.Seconds)
	return err
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
