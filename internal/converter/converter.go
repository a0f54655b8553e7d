package converter

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// rawJSONBlock returns the stored text as a raw JSON document, or JSON null
// when the column is empty or holds malformed text.
func rawJSONBlock(s string) json.RawMessage {
	if s == "" || !json.Valid([]byte(s)) {
		return json.RawMessage("null")
	}
	return json.RawMessage(s)
}
