package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
)

// reportData is the normalized input every artifact format renders from.
type reportData struct {
	WorkDate      string
	Weekday       string
	DayNote       string
	EmployeeCount int
	Total         decimal.Decimal
	Records       []record.WorkRecord
}

// parseAmount mirrors the statistics engine: amounts are stored as raw
// strings and anything unparseable contributes zero.
func parseAmount(raw string) decimal.Decimal {
	amt, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return amt
}

func weekdayOf(workDate string) string {
	t, err := time.Parse("2006-01-02", workDate)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

func buildReportData(workDate, dayNote string, records []record.WorkRecord) reportData {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(parseAmount(rec.TipShareAmount))
	}
	return reportData{
		WorkDate:      workDate,
		Weekday:       weekdayOf(workDate),
		DayNote:       dayNote,
		EmployeeCount: len(records),
		Total:         total,
		Records:       records,
	}
}

func artifactFileName(workDate string, format report.Format) string {
	return fmt.Sprintf("tipshare-report-%s.%s", workDate, format)
}

// generateArtifact renders one report document.
func generateArtifact(data reportData, format report.Format) (*report.Artifact, error) {
	var (
		content []byte
		err     error
	)

	switch format {
	case report.FormatCSV:
		content, err = renderCSV(data)
	case report.FormatJSON:
		content, err = renderJSON(data)
	case report.FormatHTML:
		content, err = renderHTML(data)
	case report.FormatXLSX:
		content, err = renderXLSX(data)
	default:
		return nil, report.ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	return &report.Artifact{
		FileName:    artifactFileName(data.WorkDate, format),
		ContentType: format.ContentType(),
		Data:        content,
	}, nil
}

var csvHeader = []string{
	"name", "tip_share_amount", "check_in", "check_out",
	"advance", "advance_type", "paid", "payment_method", "note",
}

func renderCSV(data reportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, rec := range data.Records {
		row := []string{
			rec.Name,
			rec.TipShareAmount,
			rec.CheckIn,
			rec.CheckOut,
			derefOr(rec.Advance, ""),
			advanceTypeString(rec.AdvanceType),
			paidLabel(rec.Paid),
			rec.PaymentMethod,
			rec.Note,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"TOTAL", data.Total.StringFixed(2), "", "", "", "", "", "", ""}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonReport struct {
	WorkDate      string                      `json:"work_date"`
	Weekday       string                      `json:"weekday"`
	EmployeeCount int                         `json:"employee_count"`
	TotalAmount   string                      `json:"total_amount"`
	DayNote       string                      `json:"day_note,omitempty"`
	Records       []record.WorkRecordResponse `json:"records"`
}

func renderJSON(data reportData) ([]byte, error) {
	out := jsonReport{
		WorkDate:      data.WorkDate,
		Weekday:       data.Weekday,
		EmployeeCount: data.EmployeeCount,
		TotalAmount:   data.Total.StringFixed(2),
		DayNote:       data.DayNote,
		Records:       make([]record.WorkRecordResponse, 0, len(data.Records)),
	}
	for _, rec := range data.Records {
		out.Records = append(out.Records, record.ToResponse(rec))
	}
	return json.MarshalIndent(out, "", "  ")
}

var htmlReportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"paidLabel":   paidLabel,
	"advanceType": advanceTypeString,
	"deref":       func(s *string) string { return derefOr(s, "-") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tip-share report - {{.WorkDate}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 24px; color: #333; }
h1 { font-size: 20px; }
table { border-collapse: collapse; width: 100%; margin-top: 16px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; font-size: 13px; }
th { background-color: #2c3e50; color: #fff; }
tfoot td { font-weight: bold; background-color: #f5f5f5; }
.note { margin-top: 16px; padding: 12px; background-color: #fff8e1; border-left: 4px solid #f0ad4e; }
</style>
</head>
<body>
<h1>Tip-share report - {{.Weekday}}, {{.WorkDate}}</h1>
<p>{{.EmployeeCount}} employee(s) worked this day.</p>
<table>
<thead>
<tr><th>Name</th><th>Amount</th><th>Check-in</th><th>Check-out</th><th>Advance</th><th>Status</th><th>Method</th><th>Note</th></tr>
</thead>
<tbody>
{{range .Records}}<tr><td>{{.Name}}</td><td>{{.TipShareAmount}}</td><td>{{.CheckIn}}</td><td>{{.CheckOut}}</td><td>{{deref .Advance}}{{with .AdvanceType}} ({{advanceType .}}){{end}}</td><td>{{paidLabel .Paid}}</td><td>{{.PaymentMethod}}</td><td>{{.Note}}</td></tr>
{{end}}</tbody>
<tfoot>
<tr><td>TOTAL</td><td colspan="7">{{.Total.StringFixed 2}}</td></tr>
</tfoot>
</table>
{{if .DayNote}}<div class="note"><strong>Day note:</strong> {{.DayNote}}</div>{{end}}
</body>
</html>
`))

func renderHTML(data reportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlReportTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const xlsxSheet = "Report"

func renderXLSX(data reportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2C3E50"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Tip-share report - %s, %s", data.Weekday, data.WorkDate)
	if err := f.SetCellValue(xlsxSheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.MergeCell(xlsxSheet, "A1", "H1"); err != nil {
		return nil, err
	}

	headers := []string{"Name", "Amount", "Check-in", "Check-out", "Advance", "Status", "Method", "Note"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(xlsxSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, rec := range data.Records {
		rowNum := i + 4
		amount, _ := parseAmount(rec.TipShareAmount).Float64()
		values := []any{
			rec.Name,
			amount,
			rec.CheckIn,
			rec.CheckOut,
			derefOr(rec.Advance, ""),
			paidLabel(rec.Paid),
			rec.PaymentMethod,
			rec.Note,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(data.Records) + 4
	totalCell, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(xlsxSheet, totalCell, "TOTAL"); err != nil {
		return nil, err
	}
	amountCell, err := excelize.CoordinatesToCellName(2, totalRow)
	if err != nil {
		return nil, err
	}
	total, _ := data.Total.Float64()
	if err := f.SetCellValue(xlsxSheet, amountCell, total); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(xlsxSheet, "A", "A", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(xlsxSheet, "H", "H", 32); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paidLabel(paid bool) string {
	if paid {
		return "Paid"
	}
	return "Pending"
}

func advanceTypeString(at *record.AdvanceType) string {
	if at == nil {
		return ""
	}
	return string(*at)
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
