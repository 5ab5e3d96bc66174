package models

// Flow is the kind of calculation a conversation collects data for.
type Flow string

const (
	FlowLilith Flow = "lilith"
	FlowNodes  Flow = "nodes"
)

// SessionState is a step of the data collection state machine.
type SessionState string

const (
	StateCity  SessionState = "city"
	StateDay   SessionState = "day"
	StateMonth SessionState = "month"
	StateYear  SessionState = "year"
	StateHour  SessionState = "hour"
	StateEnded SessionState = "ended"
)

// Session carries the per-conversation data collected so far.
type Session struct {
	ID             string       `json:"id"`
	Flow           Flow         `json:"flow"`
	State          SessionState `json:"state"`
	Place          *GeoPlace    `json:"place,omitempty"`
	BaselineOffset float64      `json:"baseline_offset"`
	Day            int          `json:"day,omitempty"`
	Month          int          `json:"month,omitempty"`
	Year           int          `json:"year,omitempty"`
}
