package services

import (
	"facttech_landing_go/models"
	"facttech_landing_go/services/i18n"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixtures() []models.LeadSubmission {
	base := time.Date(2026, 10, 14, 15, 4, 0, 0, time.UTC)
	return []models.LeadSubmission{
		{CreatedAt: base, Name: "Ana", Company: "Acme", Email: "ana@acme.com", Phone: "300", Industry: "Retail/Comercio", Outcome: models.OutcomeSuccess, LatencyMS: 1500},
		{CreatedAt: base.Add(-time.Hour), Name: "Luis", Company: "Beta", Email: "luis@beta.co", Phone: "301", Industry: "Otra", Outcome: models.OutcomeRejected, ErrorMessage: "Email ya registrado", LatencyMS: 240},
	}
}

func TestExportHeaders(t *testing.T) {
	require.NoError(t, i18n.Load())

	es := ExportHeaders("es")
	assert.Len(t, es, len(exportColumns))
	assert.Equal(t, "Fecha", es[0])
	assert.Equal(t, i18n.Translate("en", "export.headers.date"), ExportHeaders("en")[0])
}

func TestBuildLeadsWorkbook(t *testing.T) {
	require.NoError(t, i18n.Load())

	buf, err := BuildLeadsWorkbook("es", exportFixtures(), time.UTC)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := i18n.Translate("es", "export.sheet")
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per submission")

	assert.Equal(t, ExportHeaders("es"), rows[0])
	assert.Equal(t, []string{"2026-10-14 15:04", "Ana", "Acme", "ana@acme.com", "300", "Retail/Comercio", "success", "", "1500"}, rows[1])
	assert.Equal(t, "Email ya registrado", rows[2][7])
}

func TestBuildLeadsWorkbookEmpty(t *testing.T) {
	require.NoError(t, i18n.Load())

	buf, err := BuildLeadsWorkbook("en", nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(i18n.Translate("en", "export.sheet"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBuildLeadsReportHTML(t *testing.T) {
	require.NoError(t, i18n.Load())

	counts := []OutcomeCount{{Outcome: "success", Count: 1}, {Outcome: "rejected", Count: 1}}
	generated := time.Date(2026, 10, 14, 16, 0, 0, 0, time.UTC)

	html, err := BuildLeadsReportHTML("es", exportFixtures(), counts, generated)
	require.NoError(t, err)

	assert.Contains(t, html, i18n.Translate("es", "export.title"))
	assert.Contains(t, html, "2026-10-14 16:00")
	assert.Contains(t, html, "ana@acme.com")
	assert.Contains(t, html, "Email ya registrado")
	assert.Contains(t, html, "<th>rejected</th>")
	assert.Equal(t, 2, strings.Count(html, "<tr><td>"))
}

func TestBuildLeadsReportHTMLEscapes(t *testing.T) {
	require.NoError(t, i18n.Load())

	subs := []models.LeadSubmission{{Name: "<script>x</script>", Outcome: models.OutcomeSuccess}}
	html, err := BuildLeadsReportHTML("es", subs, nil, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
