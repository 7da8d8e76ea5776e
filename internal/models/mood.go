package models

// Mood is a self-reported wellness rating, 1 (Poor) to 5 (Excellent).
type Mood int

const (
	MoodPoor Mood = iota + 1
	MoodLow
	MoodNeutral
	MoodGood
	MoodExcellent
)

const (
	MinMood = MoodPoor
	MaxMood = MoodExcellent

	UnknownLabel = "Unknown"
	DefaultColor = "gray"
	DefaultHex   = "#6b7280"
)

type moodStyle struct {
	label string
	color string
	hex   string
}

// moodStyles is indexed by mood value; slot 0 is unused.
var moodStyles = [...]moodStyle{
	{},
	{label: "Poor", color: "red", hex: "#ef4444"},
	{label: "Low", color: "orange", hex: "#f97316"},
	{label: "Neutral", color: "yellow", hex: "#eab308"},
	{label: "Good", color: "green", hex: "#22c55e"},
	{label: "Excellent", color: "pink", hex: "#ec4899"},
}

func (m Mood) Valid() bool {
	return m >= MinMood && m <= MaxMood
}

func (m Mood) Label() string {
	if !m.Valid() {
		return UnknownLabel
	}
	return moodStyles[m].label
}

func (m Mood) Color() string {
	if !m.Valid() {
		return DefaultColor
	}
	return moodStyles[m].color
}

func (m Mood) Hex() string {
	if !m.Valid() {
		return DefaultHex
	}
	return moodStyles[m].hex
}

// LabelOf is total over all integers; values outside [1,5] map to "Unknown".
func LabelOf(value int) string {
	return Mood(value).Label()
}

// ColorOf is total over all integers; values outside [1,5] map to gray.
func ColorOf(value int) string {
	return Mood(value).Color()
}

func HexOf(value int) string {
	return Mood(value).Hex()
}

// Moods lists every mood, best first, the order pickers and legends show them in.
func Moods() []Mood {
	return []Mood{MoodExcellent, MoodGood, MoodNeutral, MoodLow, MoodPoor}
}

type MoodInfo struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
	Hex   string `json:"hex"`
}

func MoodTable() []MoodInfo {
	moods := Moods()
	table := make([]MoodInfo, 0, len(moods))
	for _, m := range moods {
		table = append(table, MoodInfo{
			Value: int(m),
			Label: m.Label(),
			Color: m.Color(),
			Hex:   m.Hex(),
		})
	}
	return table
}
