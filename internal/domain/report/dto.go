package report

import (
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/validator"
)

// SendReportRequest asks for the daily report of one work day to be
// generated, stored, and e-mailed.
type SendReportRequest struct {
	WorkDate string `json:"work_date"`
}

func (r *SendReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DispatchResponse represents one recorded report send.
type DispatchResponse struct {
	ID            string `json:"id"`
	WorkDate      string `json:"work_date"`
	Weekday       string `json:"weekday"`
	EmployeeCount int    `json:"employee_count"`
	TotalAmount   string `json:"total_amount"`
	EmailSent     bool   `json:"email_sent"`
	SentAt        string `json:"sent_at"`
}

// SendReportResponse summarizes a completed send.
type SendReportResponse struct {
	Dispatch      DispatchResponse `json:"dispatch"`
	RecipientMail string           `json:"recipient_email"`
	ArtifactURLs  []string         `json:"artifact_urls"`
}

// Artifact is a generated report document for download.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ToDispatchResponse maps a Dispatch to its response shape.
func ToDispatchResponse(d Dispatch) DispatchResponse {
	return DispatchResponse{
		ID:            d.ID,
		WorkDate:      d.WorkDate,
		Weekday:       d.Weekday,
		EmployeeCount: d.EmployeeCount,
		TotalAmount:   d.TotalAmount.StringFixed(2),
		EmailSent:     d.EmailSent,
		SentAt:        d.SentAt.Format("2006-01-02 15:04:05"),
	}
}
