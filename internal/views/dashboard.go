package views

import (
	"fmt"
	"math"
	"moodtracker/internal/models"
	"moodtracker/internal/services"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth      = 20
	noMoodText    = "No mood recorded yet"
	noAverageText = "--"
)

// bar draws value/total as a fixed-width block bar.
func bar(value, total int) string {
	if total <= 0 {
		return strings.Repeat("░", barWidth)
	}
	filled := value * barWidth / total
	filled = min(max(filled, 0), barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// RenderSummary renders the current-mood, wellness and trend cards side by side.
func RenderSummary(summary *services.Summary, styles Styles) string {
	current := renderCurrent(summary, styles)
	wellness := renderWellness(summary, styles)
	trend := renderTrend(summary, styles)

	return lipgloss.JoinHorizontal(lipgloss.Top, current, " ", wellness, " ", trend)
}

func renderTrend(summary *services.Summary, styles Styles) string {
	// an average of 0 means there is no history to average
	if len(summary.History) == 0 {
		return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Label.Render("Weekly average"),
			styles.Muted.Render(noAverageText),
		))
	}

	return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Label.Render("Weekly average"),
		styles.Value.Render(fmt.Sprintf("%.1f", summary.Average)),
		moodStyle(int(math.Round(summary.Average))).Render(summary.AverageLabel),
	))
}

func renderCurrent(summary *services.Summary, styles Styles) string {
	if summary.CurrentMood == nil {
		return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Label.Render("Today"),
			styles.Muted.Render(noMoodText),
		))
	}

	mood := *summary.CurrentMood
	return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Label.Render("Today"),
		moodStyle(mood).Render(summary.CurrentLabel),
		styles.Value.Render(string(*summary.Sentiment)),
	))
}

func renderWellness(summary *services.Summary, styles Styles) string {
	if summary.WellnessScore == nil {
		return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Label.Render("Wellness score"),
			styles.Muted.Render("-"),
		))
	}

	score := *summary.WellnessScore
	return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Label.Render("Wellness score"),
		styles.Value.Render(fmt.Sprintf("%d%%", score)),
		moodStyle(*summary.CurrentMood).Render(bar(score, 100)),
		styles.Muted.Render(summary.Insight),
	))
}

// RenderHistory renders one bar per day, oldest first.
func RenderHistory(history []models.MoodRecord, styles Styles) string {
	if len(history) == 0 {
		return styles.Muted.Render("No history yet")
	}

	rows := make([]string, 0, len(history)+1)
	rows = append(rows, styles.Title.Render("Mood trend"))
	for _, rec := range history {
		rows = append(rows, fmt.Sprintf("%s %-6s %s %s",
			styles.Label.Render(rec.Day),
			styles.Label.Render(rec.Date),
			moodStyle(rec.Mood).Render(bar(rec.Mood, int(models.MaxMood))),
			moodStyle(rec.Mood).Render(models.LabelOf(rec.Mood)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func RenderRecommendations(recs []models.Recommendation, styles Styles) string {
	rows := make([]string, 0, len(recs)+1)
	rows = append(rows, styles.Title.Render("Recommended for you"))
	for _, rec := range recs {
		rows = append(rows, styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Value.Render(rec.Title),
			styles.Label.Render(rec.Description),
			styles.Muted.Render(rec.Category+" · "+rec.Duration),
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderMoodLegend lists every mood with its value, best first.
func RenderMoodLegend(styles Styles) string {
	table := models.MoodTable()
	parts := make([]string, 0, len(table))
	for _, info := range table {
		parts = append(parts, moodStyle(info.Value).Render(fmt.Sprintf("%d %s", info.Value, info.Label)))
	}
	return strings.Join(parts, styles.Label.Render("  "))
}

// RenderDashboard stacks the summary, the trend and the recommendations.
func RenderDashboard(summary *services.Summary, recs []models.Recommendation, styles Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderSummary(summary, styles),
		"",
		RenderHistory(summary.History, styles),
		"",
		RenderRecommendations(recs, styles),
	)
}
