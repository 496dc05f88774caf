package models

// Preferences represents application-wide settings
type Preferences struct {
	DarkMode             bool   `json:"dark_mode"`               // whether the TUI uses the dark color palette
	Timezone             string `json:"timezone"`                // IANA timezone name, or "Local" for the system timezone
	SessionMinutes       int    `json:"session_minutes"`         // default timed-session length in minutes
	PoolURL              string `json:"pool_url"`                // remote prompt-pool document URL
	LastExportOfferAt    string `json:"last_export_offer_at"`    // RFC3339 timestamp of the last export reminder
	ExportOfferDismissed bool   `json:"export_offer_dismissed"`  // one-time flag: user declined export reminders
}
