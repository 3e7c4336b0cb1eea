package audit

import (
	"encoding/json"
	"time"
)

// Action is the kind of change an audit entry records.
type Action string

const (
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionSendReport Action = "send_report"
	ActionClearLogs  Action = "clear_logs"
)

// Entry is one audit log row. OldData/NewData hold JSON snapshots of the
// affected row before and after the change, when applicable.
type Entry struct {
	ID        string
	Action    Action
	TableName string
	RecordID  *string
	OldData   json.RawMessage
	NewData   json.RawMessage
	Actor     string
	SourceIP  *string
	CreatedAt time.Time
}
