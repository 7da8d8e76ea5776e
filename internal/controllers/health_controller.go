package controllers

import (
	"fmt"
	"moodtracker/internal/services"
	"moodtracker/internal/storage/interfaces"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	service   services.MoodServiceInterface
	backend   interfaces.Backend
	startTime time.Time
}

type healthResponse struct {
	Status         string  `json:"status"`
	Uptime         string  `json:"uptime"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	Storage        string  `json:"storage"`
	HistoryEntries int     `json:"history_entries"`
	MoodRecorded   bool    `json:"mood_recorded"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	_, recorded := hc.service.CurrentMood()
	resp := healthResponse{
		Status:         "ok",
		Uptime:         formatDuration(uptime),
		UptimeSeconds:  uptime.Seconds(),
		Storage:        hc.backend.Name(),
		HistoryEntries: len(hc.service.History()),
		MoodRecorded:   recorded,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.MoodServiceInterface, backend interfaces.Backend) *HealthController {
	return &HealthController{
		service:   service,
		backend:   backend,
		startTime: time.Now(),
	}
}
