// Package report serializes finalized records into the downloadable
// "Teacher Schedule & Notes" document.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/ProMBZ/Teacher-Project/internal/domain/models"
)

const (
	// FileName is the fixed download name of the exported report.
	FileName = "teacher_records.pdf"

	// ContentType of the exported document.
	ContentType = "application/pdf"

	separator = "------------------------------------------------"
)

// Renderer produces the fixed-format report over a record list.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer wires a renderer instance.
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// BuildLines lays out the document text: a header followed by one block per
// record in insertion order. Non-Friday records get a "Friday? No." marker
// instead of marks. An empty record list yields just the header.
func (r *Renderer) BuildLines(records []models.FinalizedRecord) []string {
	lines := []string{"Teacher Schedule & Notes", separator, ""}

	for i, record := range records {
		lines = append(lines,
			fmt.Sprintf("Record %d:", i+1),
			fmt.Sprintf("  Date: %s", record.Date),
			fmt.Sprintf("  Arrival: %s", record.Arrival),
			fmt.Sprintf("  Departure: %s", record.Departure),
			fmt.Sprintf("  Topics: %s", record.Topics))

		if record.IsFriday {
			lines = append(lines,
				"  Friday? Yes. Marks out of 20 =>",
				fmt.Sprintf("    Muhammad: %s", record.Mark("muhammad")),
				fmt.Sprintf("    Abubakar: %s", record.Mark("abubakar")),
				fmt.Sprintf("    Hafsa: %s", record.Mark("hafsa")))
		} else {
			lines = append(lines, "  Friday? No.")
		}

		lines = append(lines, "")
	}

	return lines
}

// RenderPDF writes the document lines onto Letter pages (Helvetica 12,
// automatic page breaks) and returns the PDF bytes. An empty store still
// produces a valid single-page document; callers decide whether to offer it.
func (r *Renderer) RenderPDF(records []models.FinalizedRecord) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(50, 50, 50)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	for _, line := range r.BuildLines(records) {
		pdf.CellFormat(0, 14, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	r.logger.Debug("report rendered",
		zap.Int("records", len(records)),
		zap.Int("bytes", buf.Len()))

	return buf.Bytes(), nil
}
