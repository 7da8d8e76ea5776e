package models

import "time"

const (
	DayLayout  = "Mon"
	DateLayout = "Jan 2"
)

// MoodRecord is a single day's observation as persisted under the history key.
type MoodRecord struct {
	Day  string `json:"day"`
	Mood int    `json:"mood"`
	Date string `json:"date"`
}

func NewMoodRecord(day time.Time, mood int) MoodRecord {
	return MoodRecord{
		Day:  day.Format(DayLayout),
		Mood: mood,
		Date: day.Format(DateLayout),
	}
}

// SeedHistory returns a fresh copy of the sample week used when nothing is stored yet.
func SeedHistory() []MoodRecord {
	return []MoodRecord{
		{Day: "Mon", Mood: 4, Date: "Dec 9"},
		{Day: "Tue", Mood: 3, Date: "Dec 10"},
		{Day: "Wed", Mood: 5, Date: "Dec 11"},
		{Day: "Thu", Mood: 2, Date: "Dec 12"},
		{Day: "Fri", Mood: 4, Date: "Dec 13"},
		{Day: "Sat", Mood: 5, Date: "Dec 14"},
		{Day: "Sun", Mood: 4, Date: "Dec 15"},
	}
}
