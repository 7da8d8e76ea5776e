package models

type Recommendation struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Mood        string `json:"mood"`
}

func Catalog() []Recommendation {
	return []Recommendation{
		{
			ID:          1,
			Title:       "Take a 5-minute breathing break",
			Description: "Deep breathing can help reduce stress and improve focus",
			Category:    "Mindfulness",
			Duration:    "5 min",
			Mood:        "stressed",
		},
		{
			ID:          2,
			Title:       "Listen to calming music",
			Description: "Soft instrumental music can help lift your mood",
			Category:    "Audio",
			Duration:    "15 min",
			Mood:        "low",
		},
		{
			ID:          3,
			Title:       "Read an inspiring article",
			Description: "Positive content can help shift your mindset",
			Category:    "Learning",
			Duration:    "10 min",
			Mood:        "neutral",
		},
		{
			ID:          4,
			Title:       "Connect with a friend",
			Description: "Social connections boost happiness and well-being",
			Category:    "Social",
			Duration:    "20 min",
			Mood:        "lonely",
		},
		{
			ID:          5,
			Title:       "Take an energizing walk",
			Description: "Physical activity releases endorphins and boosts energy",
			Category:    "Exercise",
			Duration:    "15 min",
			Mood:        "low-energy",
		},
		{
			ID:          6,
			Title:       "Practice gratitude",
			Description: "Write down three things you're grateful for today",
			Category:    "Reflection",
			Duration:    "5 min",
			Mood:        "general",
		},
	}
}
