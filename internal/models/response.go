package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AppConfigResponse mirrors the config payload the dashboard frontend reads
// before offering the Google connect button.
type AppConfigResponse struct {
	GoogleClientID string `json:"googleClientId"`
	GoogleAPIKey   string `json:"googleApiKey"`
	SyncEnabled    bool   `json:"syncEnabled"`
}

// IngestResponse reports how much of an upload survived parsing. Individual
// bad rows are dropped silently; only the counts are surfaced.
type IngestResponse struct {
	Parsed    int            `json:"parsed"`
	DataLines int            `json:"dataLines"`
	Metrics   SummaryMetrics `json:"metrics"`
}

// SyncResponse is returned after a completed inbox sync.
type SyncResponse struct {
	Loaded  int            `json:"loaded"`
	Status  string         `json:"status"`
	Metrics SummaryMetrics `json:"metrics"`
}
