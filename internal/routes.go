package internal

import (
	"moodtracker/internal/controllers"
	"moodtracker/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/summary", http.HandlerFunc(apiController.GetSummary))
	routers.Get("/history", http.HandlerFunc(apiController.GetHistory))
	routers.Post("/mood", http.HandlerFunc(apiController.RecordMood))
	routers.Get("/recommendations", http.HandlerFunc(apiController.GetRecommendations))
	routers.Get("/moods", http.HandlerFunc(apiController.GetMoods))
	return routers
}
