package model

import (
	"bytes"
	"encoding/json"
)

// PrettyJSON indents raw with two spaces and keeps key order. A body that
// is not JSON is rendered as a JSON string literal.
func PrettyJSON(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if json.Valid(raw) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err == nil {
			return buf.String()
		}
	}
	s, _ := json.Marshal(string(raw))
	return string(s)
}
