package evaluation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const reportFamily = "report"

//go:embed fonts/DejaVuSans.ttf
var defaultRegular []byte

//go:embed fonts/DejaVuSans-Bold.ttf
var defaultBold []byte

var ErrNotTrueType = errors.New("report font is not a TrueType file")

// Reporter renders evaluation PDFs with a UTF-8 TrueType font. Text is
// written as Unicode, so any script the font covers is kept.
type Reporter struct {
	regular  []byte
	bold     []byte
	compress bool
}

// NewReporter uses the TrueType font at fontPath for all report text, or the
// bundled DejaVu Sans when fontPath is empty. DejaVu has no Hangul glyphs;
// Korean data needs a font such as NanumGothic.
func NewReporter(fontPath string) (*Reporter, error) {
	if strings.TrimSpace(fontPath) == "" {
		return &Reporter{regular: defaultRegular, bold: defaultBold, compress: true}, nil
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read report font: %w", err)
	}
	if !isTrueType(data) {
		return nil, fmt.Errorf("%w: %s", ErrNotTrueType, fontPath)
	}
	return &Reporter{regular: data, bold: data, compress: true}, nil
}

func isTrueType(data []byte) bool {
	return len(data) > 12 && (bytes.HasPrefix(data, []byte{0, 1, 0, 0}) || bytes.HasPrefix(data, []byte("true")))
}

// Render lays out an employee evaluation as a single-page A4 PDF.
func (r *Reporter) Render(result EmployeeResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.AddUTF8FontFromBytes(reportFamily, "", r.regular)
	pdf.AddUTF8FontFromBytes(reportFamily, "B", r.bold)
	pdf.AddPage()

	pdf.SetFont(reportFamily, "B", 16)
	pdf.Cell(40, 10, "Employee Evaluation")
	pdf.Ln(12)

	pdf.SetFont(reportFamily, "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", result.EmployeeName, result.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Evaluated: %s", result.EvaluationDate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Experience: %.1f years", result.ExperienceYears))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overall: %.0f (%s)", result.OverallScore, GradeFor(result.OverallScore)))
	pdf.Ln(10)

	pdf.SetFont(reportFamily, "B", 13)
	pdf.Cell(0, 8, "Scores")
	pdf.Ln(8)
	pdf.SetFont(reportFamily, "", 12)
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Technical skills", result.Scores.TechnicalSkills},
		{"Project experience", result.Scores.ProjectExperience},
		{"Resume credibility", result.Scores.ResumeCredibility},
		{"Cultural fit", result.Scores.CulturalFit},
	} {
		pdf.CellFormat(70, 7, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%.0f", row.value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		pdf.SetFont(reportFamily, "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont(reportFamily, "", 11)
		for _, line := range lines {
			pdf.MultiCell(0, 6, "- "+line, "", "L", false)
		}
		pdf.Ln(3)
	}
	section("Strengths", result.Strengths)
	section("Weaknesses", result.Weaknesses)
	section("Analysis", nonEmpty(
		labelled("Tech stack", result.Analysis.TechStack),
		labelled("Project similarity", result.Analysis.ProjectSimilarity),
		labelled("Credibility", result.Analysis.Credibility),
		labelled("Market comparison", result.Analysis.MarketComparison),
	))
	section("Recommendation", nonEmpty(result.AIRecommendation))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func labelled(label, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return label + ": " + text
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
