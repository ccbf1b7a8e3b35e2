package model

// TrackLog 每次航班查詢一筆；不含供應商金鑰與回應內容
type TrackLog struct {
	TraceID        string `json:"trace_id,omitempty"`
	Entry          string `json:"entry"`
	FlightNumber   string `json:"flight_number,omitempty"`
	Outcome        string `json:"outcome"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
	RecordCount    int    `json:"record_count"`
	DurationMs     int64  `json:"duration_ms"`
	ProjectName    string `json:"project_name,omitempty"`
	Version        string `json:"version"`
	LoggedAt       string `json:"logged_at"`
}
