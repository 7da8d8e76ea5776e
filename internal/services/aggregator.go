package services

import (
	"math"
	"moodtracker/internal/models"
)

type Sentiment string

const (
	SentimentPositive       Sentiment = "Positive"
	SentimentNeutral        Sentiment = "Neutral"
	SentimentNeedsAttention Sentiment = "Needs attention"
)

const (
	InsightPositive = "You're doing great! Keep up the positive momentum."
	InsightBalanced = "You're in balance. Consider adding some energizing activities."
	InsightSelfCare = "Take some time for self-care. Small steps can make a big difference."
)

func SentimentOf(mood int) Sentiment {
	switch {
	case mood >= int(models.MoodGood):
		return SentimentPositive
	case mood == int(models.MoodNeutral):
		return SentimentNeutral
	default:
		return SentimentNeedsAttention
	}
}

func InsightOf(mood int) string {
	switch {
	case mood >= int(models.MoodGood):
		return InsightPositive
	case mood == int(models.MoodNeutral):
		return InsightBalanced
	default:
		return InsightSelfCare
	}
}

func WellnessScorePercent(mood int) int {
	return int(math.Round(float64(mood) / float64(models.MaxMood) * 100))
}

// AverageOf returns the mean mood, or 0 for an empty history. 0 means
// "no data" and never collides with a real average, which is at least 1.
func AverageOf(history []models.MoodRecord) float64 {
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range history {
		sum += rec.Mood
	}
	return float64(sum) / float64(len(history))
}

// Summary is everything the dashboard shows. Fields derived from the current
// mood are omitted when no mood has been recorded.
type Summary struct {
	CurrentMood   *int                `json:"currentMood,omitempty"`
	CurrentLabel  string              `json:"currentLabel,omitempty"`
	Sentiment     *Sentiment          `json:"sentiment,omitempty"`
	Insight       string              `json:"insight,omitempty"`
	WellnessScore *int                `json:"wellnessScore,omitempty"`
	Average       float64             `json:"average"`
	AverageLabel  string              `json:"averageLabel"`
	History       []models.MoodRecord `json:"history"`
}

func Summarize(snap *models.Snapshot) *Summary {
	history := snap.History
	if history == nil {
		history = []models.MoodRecord{}
	}

	average := AverageOf(history)
	summary := &Summary{
		Average:      average,
		AverageLabel: models.LabelOf(int(math.Round(average))),
		History:      history,
	}

	if snap.CurrentMood != nil {
		mood := *snap.CurrentMood
		sentiment := SentimentOf(mood)
		score := WellnessScorePercent(mood)

		summary.CurrentMood = &mood
		summary.CurrentLabel = models.LabelOf(mood)
		summary.Sentiment = &sentiment
		summary.Insight = InsightOf(mood)
		summary.WellnessScore = &score
	}
	return summary
}

const recommendationLimit = 3

// Recommendations always returns the first three catalog entries; the mood
// does not filter them yet.
func Recommendations(_ *int) []models.Recommendation {
	return models.Catalog()[:recommendationLimit]
}
