package record

import (
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/validator"
)

// WorkRecordResponse represents the response structure for a work record.
type WorkRecordResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TipShareAmount string  `json:"tip_share_amount"`
	WorkDate       string  `json:"work_date"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	Advance        *string `json:"advance,omitempty"`
	AdvanceType    *string `json:"advance_type,omitempty"`
	Paid           bool    `json:"paid"`
	PaymentMethod  string  `json:"payment_method"`
	Note           string  `json:"note,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// CreateWorkRecordRequest represents the request structure for creating a work record.
type CreateWorkRecordRequest struct {
	Name           string  `json:"name"`
	TipShareAmount string  `json:"tip_share_amount"`
	WorkDate       string  `json:"work_date"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	Advance        *string `json:"advance,omitempty"`
	AdvanceType    *string `json:"advance_type,omitempty"`
	Paid           bool    `json:"paid"`
	PaymentMethod  string  `json:"payment_method"`
	Note           string  `json:"note"`
}

func (r *CreateWorkRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// TipShareAmount
	if !validator.IsValidAmount(r.TipShareAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "tip_share_amount",
			Message: "tip_share_amount must be a non-negative decimal",
		})
	}

	// WorkDate
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be in YYYY-MM-DD format",
		})
	}

	// CheckIn / CheckOut
	if r.CheckIn != "" && !validator.IsValidTimeOfDay(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM format",
		})
	}
	if r.CheckOut != "" && !validator.IsValidTimeOfDay(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM format",
		})
	}

	// Advance
	if r.Advance != nil && !validator.IsValidAmount(*r.Advance) {
		errs = append(errs, validator.ValidationError{
			Field:   "advance",
			Message: "advance must be a non-negative decimal",
		})
	}
	if r.AdvanceType != nil && *r.AdvanceType != string(AdvancePix) && *r.AdvanceType != string(AdvanceCash) {
		errs = append(errs, validator.ValidationError{
			Field:   "advance_type",
			Message: "advance_type must be pix or cash",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateWorkRecordRequest represents the request structure for updating a work record.
// Nil fields are left untouched.
type UpdateWorkRecordRequest struct {
	ID             string  `json:"-"` // From URL
	Name           *string `json:"name,omitempty"`
	TipShareAmount *string `json:"tip_share_amount,omitempty"`
	WorkDate       *string `json:"work_date,omitempty"`
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
	Advance        *string `json:"advance,omitempty"`
	AdvanceType    *string `json:"advance_type,omitempty"`
	Paid           *bool   `json:"paid,omitempty"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	Note           *string `json:"note,omitempty"`
}

func (r *UpdateWorkRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.TipShareAmount != nil && !validator.IsValidAmount(*r.TipShareAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "tip_share_amount",
			Message: "tip_share_amount must be a non-negative decimal",
		})
	}
	if r.WorkDate != nil {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_date",
				Message: "work_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Advance != nil && !validator.IsValidAmount(*r.Advance) {
		errs = append(errs, validator.ValidationError{
			Field:   "advance",
			Message: "advance must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListWorkRecordsFilter narrows record listings.
type ListWorkRecordsFilter struct {
	WorkDate string // optional, ISO date
}

// UpsertDayNoteRequest creates or replaces the shared note for one work day.
type UpsertDayNoteRequest struct {
	WorkDate string `json:"work_date"`
	Note     string `json:"note"`
}

func (r *UpsertDayNoteRequest) Validate() error {
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

// DayNoteResponse represents the response structure for a day note.
type DayNoteResponse struct {
	WorkDate  string `json:"work_date"`
	Note      string `json:"note"`
	UpdatedAt string `json:"updated_at"`
}

// ToResponse maps a WorkRecord to its response shape.
func ToResponse(rec WorkRecord) WorkRecordResponse {
	resp := WorkRecordResponse{
		ID:             rec.ID,
		Name:           rec.Name,
		TipShareAmount: rec.TipShareAmount,
		WorkDate:       rec.WorkDate,
		CheckIn:        rec.CheckIn,
		CheckOut:       rec.CheckOut,
		Advance:        rec.Advance,
		Paid:           rec.Paid,
		PaymentMethod:  rec.PaymentMethod,
		Note:           rec.Note,
		CreatedAt:      rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.AdvanceType != nil {
		at := string(*rec.AdvanceType)
		resp.AdvanceType = &at
	}
	return resp
}
