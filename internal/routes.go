package internal

import (
	"net/http"

	"fpt/internal/controllers"
	"fpt/internal/providers"
	"fpt/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	routers.Get("/searches", http.HandlerFunc(apiController.GetSearches))
	return routers
}
