package audit

import "encoding/json"

// EntryResponse represents one audit log row for rendering.
type EntryResponse struct {
	ID        string          `json:"id"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  *string         `json:"record_id,omitempty"`
	OldData   json.RawMessage `json:"old_data,omitempty"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
	Actor     string          `json:"actor"`
	SourceIP  *string         `json:"source_ip,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// ListFilter narrows audit log listings.
type ListFilter struct {
	TableName string
	Action    string
	Limit     int
}

// ToResponse maps an Entry to its response shape.
func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Action:    string(e.Action),
		TableName: e.TableName,
		RecordID:  e.RecordID,
		OldData:   e.OldData,
		NewData:   e.NewData,
		Actor:     e.Actor,
		SourceIP:  e.SourceIP,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
