package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
)

func sampleRecords() []record.WorkRecord {
	advance := "20.00"
	advanceType := record.AdvancePix
	return []record.WorkRecord{
		{
			ID:             "1",
			Name:           "Ana",
			TipShareAmount: "100.00",
			WorkDate:       "2024-01-10",
			CheckIn:        "08:00",
			CheckOut:       "17:00",
			Advance:        &advance,
			AdvanceType:    &advanceType,
			Paid:           true,
			PaymentMethod:  "pix",
		},
		{
			ID:             "2",
			Name:           "Bia",
			TipShareAmount: "80.50",
			WorkDate:       "2024-01-10",
			CheckIn:        "09:00",
			CheckOut:       "18:00",
			PaymentMethod:  "cash",
			Note:           "left early",
		},
	}
}

func TestBuildReportData(t *testing.T) {
	data := buildReportData("2024-01-10", "busy night", sampleRecords())

	assert.Equal(t, "2024-01-10", data.WorkDate)
	assert.Equal(t, "Wednesday", data.Weekday)
	assert.Equal(t, 2, data.EmployeeCount)
	assert.Equal(t, "180.50", data.Total.StringFixed(2))
	assert.Equal(t, "busy night", data.DayNote)
}

func TestBuildReportData_MalformedAmountCountsAsZero(t *testing.T) {
	records := sampleRecords()
	records[1].TipShareAmount = "abc"

	data := buildReportData("2024-01-10", "", records)
	assert.Equal(t, "100.00", data.Total.StringFixed(2))
}

func TestGenerateArtifact_UnknownFormat(t *testing.T) {
	data := buildReportData("2024-01-10", "", sampleRecords())

	_, err := generateArtifact(data, report.Format("pdf"))
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestGenerateArtifact_FileNames(t *testing.T) {
	data := buildReportData("2024-01-10", "", sampleRecords())

	for _, format := range report.Formats {
		artifact, err := generateArtifact(data, format)
		require.NoError(t, err)
		assert.Equal(t, "tipshare-report-2024-01-10."+string(format), artifact.FileName)
		assert.Equal(t, format.ContentType(), artifact.ContentType)
		assert.NotEmpty(t, artifact.Data)
	}
}

func TestRenderCSV(t *testing.T) {
	data := buildReportData("2024-01-10", "", sampleRecords())

	out, err := renderCSV(data)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header + 2 records + total row")

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "Paid", rows[1][6])
	assert.Equal(t, "Bia", rows[2][0])
	assert.Equal(t, "Pending", rows[2][6])
	assert.Equal(t, "TOTAL", rows[3][0])
	assert.Equal(t, "180.50", rows[3][1])
}

func TestRenderJSON(t *testing.T) {
	data := buildReportData("2024-01-10", "busy night", sampleRecords())

	out, err := renderJSON(data)
	require.NoError(t, err)

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "2024-01-10", decoded.WorkDate)
	assert.Equal(t, "Wednesday", decoded.Weekday)
	assert.Equal(t, 2, decoded.EmployeeCount)
	assert.Equal(t, "180.50", decoded.TotalAmount)
	assert.Equal(t, "busy night", decoded.DayNote)
	require.Len(t, decoded.Records, 2)
	assert.Equal(t, "Ana", decoded.Records[0].Name)
}

func TestRenderHTML(t *testing.T) {
	data := buildReportData("2024-01-10", "busy night", sampleRecords())

	out, err := renderHTML(data)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Wednesday, 2024-01-10")
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, "Bia")
	assert.Contains(t, html, "180.50")
	assert.Contains(t, html, "busy night")
	assert.Contains(t, html, "Paid")
	assert.Contains(t, html, "Pending")
}

func TestRenderHTML_NoDayNote(t *testing.T) {
	data := buildReportData("2024-01-10", "", sampleRecords())

	out, err := renderHTML(data)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Day note:")
}

func TestRenderXLSX(t *testing.T) {
	data := buildReportData("2024-01-10", "", sampleRecords())

	out, err := renderXLSX(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{xlsxSheet}, f.GetSheetList())

	title, err := f.GetCellValue(xlsxSheet, "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "2024-01-10")

	name, err := f.GetCellValue(xlsxSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)

	amount, err := f.GetCellValue(xlsxSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "100", amount)

	totalLabel, err := f.GetCellValue(xlsxSheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", totalLabel)

	total, err := f.GetCellValue(xlsxSheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "180.5", total)
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, "Wednesday", weekdayOf("2024-01-10"))
	assert.Equal(t, "Thursday", weekdayOf("2024-02-29"))
	assert.Equal(t, "", weekdayOf("not-a-date"))
}

func TestParseAmount_TrimsWhitespace(t *testing.T) {
	assert.True(t, parseAmount(" 42.10 ").Equal(parseAmount("42.10")))
	assert.True(t, parseAmount(strings.Repeat("x", 3)).IsZero())
}
