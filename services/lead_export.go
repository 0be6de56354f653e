package services

import (
	"bytes"
	"facttech_landing_go/models"
	"facttech_landing_go/services/i18n"
	"fmt"
	"html/template"
	"time"

	"github.com/xuri/excelize/v2"
)

// exportColumns fixes the column order shared by the workbook and the report
var exportColumns = []string{"date", "name", "company", "email", "phone", "industry", "outcome", "error", "latency"}

// exportDateLayout is used for the date column in both formats
const exportDateLayout = "2006-01-02 15:04"

// ExportHeaders returns the localized column titles
func ExportHeaders(lang string) []string {
	headers := make([]string, len(exportColumns))
	for i, col := range exportColumns {
		headers[i] = i18n.Translate(lang, "export.headers."+col)
	}
	return headers
}

// exportRow flattens a submission into the column order of exportColumns
func exportRow(s models.LeadSubmission, loc *time.Location) []interface{} {
	return []interface{}{
		s.CreatedAt.In(loc).Format(exportDateLayout),
		s.Name,
		s.Company,
		s.Email,
		s.Phone,
		s.Industry,
		s.Outcome,
		s.ErrorMessage,
		s.LatencyMS,
	}
}

// BuildLeadsWorkbook writes one header row and one row per submission
func BuildLeadsWorkbook(lang string, submissions []models.LeadSubmission, loc *time.Location) (*bytes.Buffer, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := i18n.Translate(lang, "export.sheet")
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := ExportHeaders(lang)
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, s := range submissions {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := exportRow(s, loc)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2563EB"}, Pattern: 1},
	})
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	f.SetColWidth(sheet, "A", lastCol, 20)
	f.SetColWidth(sheet, "H", "H", 40)

	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}
	if len(submissions) > 0 {
		if err := f.AutoFilter(sheet, fmt.Sprintf("A1:%s%d", lastCol, len(submissions)+1), nil); err != nil {
			return nil, fmt.Errorf("failed to add filter: %w", err)
		}
	}

	return f.WriteToBuffer()
}

var leadReportTemplate = template.Must(template.New("lead_report").Parse(`
<h1>{{.Title}}</h1>
<p class="generated">{{.GeneratedAt}}</p>
{{if .Counts}}
<table class="summary">
  <tbody>
  {{range .Counts}}<tr><th>{{.Outcome}}</th><td>{{.Count}}</td></tr>
  {{end}}
  </tbody>
</table>
{{end}}
<table class="leads">
  <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>
  {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
  {{end}}
  </tbody>
</table>
`))

// BuildLeadsReportHTML renders the body of the PDF report
func BuildLeadsReportHTML(lang string, submissions []models.LeadSubmission, counts []OutcomeCount, generatedAt time.Time) (string, error) {
	loc := generatedAt.Location()
	rows := make([][]interface{}, len(submissions))
	for i, s := range submissions {
		rows[i] = exportRow(s, loc)
	}

	data := struct {
		Title       string
		GeneratedAt string
		Headers     []string
		Rows        [][]interface{}
		Counts      []OutcomeCount
	}{
		Title:       i18n.Translate(lang, "export.title"),
		GeneratedAt: generatedAt.Format(exportDateLayout),
		Headers:     ExportHeaders(lang),
		Rows:        rows,
		Counts:      counts,
	}

	var buf bytes.Buffer
	if err := leadReportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render lead report: %w", err)
	}
	return buf.String(), nil
}
