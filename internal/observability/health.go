package observability

import "time"

// HealthReport is the detailed payload served on /health. The root route
// serves the compact two-field form; this one carries the operational
// context probes care about.
type HealthReport struct {
	Status    string          `json:"status"`
	Service   string          `json:"service"`
	Timestamp time.Time       `json:"timestamp"`
	Version   string          `json:"version"`
	Uptime    string          `json:"uptime"`
	Checks    map[string]bool `json:"checks"`
}
