package models

// Snapshot is a read-only copy of the store state handed to renderers.
type Snapshot struct {
	CurrentMood *int         `json:"currentMood"`
	History     []MoodRecord `json:"history"`
}
