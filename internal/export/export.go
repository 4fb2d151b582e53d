package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/sandeepkv93/homemaint/internal/model"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatJSON, FormatCSV, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", raw)
	}
}

// Binary reports whether the output should not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatPDF
}

type taskRecord struct {
	Description string `json:"description"`
	Due         string `json:"due"`
	Frequency   string `json:"frequency"`
}

func Render(format Format, tasks []model.Task) ([]byte, error) {
	switch format {
	case FormatText:
		var b strings.Builder
		for _, task := range tasks {
			b.WriteString(task.String())
			b.WriteString("\n")
		}
		return []byte(b.String()), nil
	case FormatJSON:
		records := make([]taskRecord, 0, len(tasks))
		for _, task := range tasks {
			records = append(records, toRecord(task))
		}
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatCSV:
		var b bytes.Buffer
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"description", "due", "frequency"})
		for _, task := range tasks {
			r := toRecord(task)
			_ = w.Write([]string{r.Description, r.Due, r.Frequency})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case FormatPDF:
		return renderPDF(tasks)
	default:
		return nil, fmt.Errorf("export: unknown format %q", format)
	}
}

func toRecord(task model.Task) taskRecord {
	return taskRecord{
		Description: task.Description,
		Due:         task.Due.String(),
		Frequency:   string(task.Frequency),
	}
}

func renderPDF(tasks []model.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Home Maintenance Checklist", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Home Maintenance Checklist")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(10, 8, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(110, 8, "Task", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Due", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Frequency", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.CellFormat(180, 8, "No tasks scheduled.", "1", 1, "L", false, 0, "")
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, task := range tasks {
		pdf.CellFormat(10, 8, "[ ]", "1", 0, "C", false, 0, "")
		pdf.CellFormat(110, 8, tr(task.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, task.Due.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, string(task.Frequency), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
