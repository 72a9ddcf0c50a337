package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Zafert/pointr-challenge/internal/app"
	"github.com/Zafert/pointr-challenge/internal/controllers"
	"github.com/Zafert/pointr-challenge/internal/middleware"
	"github.com/Zafert/pointr-challenge/internal/routes"
)

// NewRouter builds the full HTTP handler: routes, unmatched-route handling,
// and the middleware chain. Middleware wraps the router itself so that
// 404 responses are logged and carry the same headers.
func NewRouter(a *app.App) http.Handler {
	healthCtrl := controllers.NewHealthController(a)
	siteCtrl := controllers.NewSiteController(a.SiteService)
	buildingCtrl := controllers.NewBuildingController(a.BuildingService)
	levelCtrl := controllers.NewLevelController(a.LevelService)

	router := mux.NewRouter()
	router.NotFoundHandler = middleware.NotFoundHandler()
	router.MethodNotAllowedHandler = middleware.NotFoundHandler()

	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	// Sites
	router.HandleFunc(routes.Sites, siteCtrl.ListSitesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Sites, siteCtrl.CreateSiteHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.SiteByID, siteCtrl.GetSiteHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.SiteByID, siteCtrl.DeleteSiteHandler).Methods(http.MethodDelete)

	// Buildings
	router.HandleFunc(routes.Buildings, buildingCtrl.ListBuildingsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Buildings, buildingCtrl.CreateBuildingHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.BuildingByID, buildingCtrl.GetBuildingHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.BuildingByID, buildingCtrl.DeleteBuildingHandler).Methods(http.MethodDelete)

	// Levels; bulk must be registered before {id}
	router.HandleFunc(routes.Levels, levelCtrl.ListLevelsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Levels, levelCtrl.ImportLevelHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.LevelsBulk, levelCtrl.BulkImportLevelsHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.LevelByID, levelCtrl.GetLevelHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.LevelByID, levelCtrl.DeleteLevelHandler).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins: a.Config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	var h http.Handler = router
	h = middleware.SecurityHeadersMiddleware()(h)
	h = c.Handler(h)
	h = middleware.RequestLoggerMiddleware()(h)
	h = middleware.RecoveryMiddleware()(h)
	return h
}
