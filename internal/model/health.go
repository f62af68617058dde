package model

import "encoding/json"

// HealthStatus is the object returned by the backend health endpoint. Its
// schema belongs to the backend; Fields is the decoded form and Raw keeps
// the bytes exactly as received so the page shows keys in backend order.
type HealthStatus struct {
	Fields map[string]any
	Raw    json.RawMessage
}

// Pretty renders the status with two-space indentation.
func (h HealthStatus) Pretty() string {
	return PrettyJSON(h.Raw)
}
