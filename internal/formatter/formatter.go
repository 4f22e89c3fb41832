// package formatter provides functions to export the applications list to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
)

// ParseFormat validates a format name. "markdown" is accepted as an alias of [FormatMarkdown].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", string(FormatText), "txt":
		return FormatText, nil
	case string(FormatCSV):
		return FormatCSV, nil
	case string(FormatMarkdown), "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want text, csv or md)", shared.ErrInvalidArgument, s)
	}
}

// Export renders rows in format f.
func Export(f Format, rows []flows.ApplicationRow) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(rows)
	case FormatMarkdown:
		return ExportToMarkdown(rows)
	case FormatText:
		return ExportToText(rows)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, f)
	}
}

// ExportToCSV converts applications to CSV with columns: ID, Job ID, Title, Company, Status, Apply URL
func ExportToCSV(rows []flows.ApplicationRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Job ID", "Title", "Company", "Status", "Apply URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.ID),
			strconv.Itoa(row.JobID),
			row.Title,
			row.Company,
			row.Label,
			row.ApplyURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts applications to a Markdown table, linking manual applications.
func ExportToMarkdown(rows []flows.ApplicationRow) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Applications\n\n")
	if len(rows) == 0 {
		buf.WriteString(flows.NoApplicationsText + "\n")
		return buf.Bytes(), nil
	}

	buf.WriteString(fmt.Sprintf("**Total**: %d\n\n", len(rows)))
	buf.WriteString("| Job | Company | Status | Action |\n")
	buf.WriteString("|---|---|---|---|\n")
	for _, row := range rows {
		action := ""
		if row.ApplyURL != "" {
			action = fmt.Sprintf("[Apply Now](%s)", row.ApplyURL)
		}
		buf.WriteString(fmt.Sprintf("| %s | %s | `%s` | %s |\n",
			escapeCell(row.Title), escapeCell(row.Company), row.Label, action))
	}

	return buf.Bytes(), nil
}

// ExportToText converts applications to plain text format
func ExportToText(rows []flows.ApplicationRow) ([]byte, error) {
	var buf bytes.Buffer
	if len(rows) == 0 {
		buf.WriteString(flows.NoApplicationsText + "\n")
		return buf.Bytes(), nil
	}

	buf.WriteString(fmt.Sprintf("Applications: %d\n\n", len(rows)))
	for i, row := range rows {
		line := fmt.Sprintf("%d. [%s] %s", i+1, row.Label, row.Title)
		if row.Company != "" {
			line += " - " + row.Company
		}
		buf.WriteString(line + "\n")
		if row.ApplyURL != "" {
			buf.WriteString(fmt.Sprintf("   Apply Now: %s\n", row.ApplyURL))
		}
	}

	return buf.Bytes(), nil
}

// WriteExport renders rows in format f to w.
func WriteExport(w io.Writer, f Format, rows []flows.ApplicationRow) error {
	data, err := Export(f, rows)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// WriteExportFile renders rows in format f to filepath.
//
// Defaults to applications.{txt,csv,md} when filepath is empty.
func WriteExportFile(f Format, rows []flows.ApplicationRow, filepath string) (string, error) {
	if filepath == "" {
		filepath = "applications." + f.Extension()
	}

	data, err := Export(f, rows)
	if err != nil {
		return "", fmt.Errorf("failed to generate export: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return filepath, nil
}

// Extension returns the file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "md"
	default:
		return "txt"
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
