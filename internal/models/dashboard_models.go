package models

// DashboardSummary holds the aggregate counts rendered on the dashboard.
// ActiveClients is the total client count; no activity filter is applied.
type DashboardSummary struct {
	EventsToday   int `json:"eventsToday"`
	EventsPending int `json:"eventsPending"`
	ActiveClients int `json:"activeClients"`
}
