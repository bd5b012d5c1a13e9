package models

// Settings represents application-wide settings
type Settings struct {
	ManifestationQuote string `json:"manifestation_quote"` // quote shown on the dashboard strip
	SharedWhy          string `json:"shared_why"`           // the couple's shared why statement
	Theme              string `json:"theme"`                // "sunrise", "midnight", or "celebration"
	SoundEnabled       bool   `json:"sound_enabled"`        // whether celebration sounds are enabled
	MusicEnabled       bool   `json:"music_enabled"`        // whether focus music is enabled
	CurrentPerson      Person `json:"current_person"`       // who is using the app right now
	Timezone           string `json:"timezone"`             // IANA timezone name, or "Local" for system timezone
	LastMirrorPush     string `json:"last_mirror_push"`     // RFC3339 timestamp of the last successful mirror push
}
