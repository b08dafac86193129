package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/worldcup-hub/docs"
	"github.com/Dosada05/worldcup-hub/handlers"
	"github.com/Dosada05/worldcup-hub/middleware"
)

const (
	assetsPrefix = "/assets"
	swaggerPath  = "/swagger"
)

type Options struct {
	AssetsDir          string
	CORSAllowedOrigins []string
	Logger             *slog.Logger
}

func SetupRoutes(
	router chi.Router,
	homeHandler *handlers.HomeHandler,
	tournamentHandler *handlers.TournamentHandler,
	opts Options,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)

	// Страницы, отрисованные на сервере
	router.Get("/", homeHandler.Index)
	router.Get("/tournament", tournamentHandler.TournamentPage)
	router.Get("/worldcup-2026-info", tournamentHandler.WorldCupInfoPage)

	// Статика (CSS, JS, изображения) с листингом каталогов
	router.Handle(assetsPrefix+"/*", AssetsHandler(assetsPrefix, opts.AssetsDir))

	router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.NotFound(handlers.NotFound(opts.Logger))
		r.MethodNotAllowed(handlers.MethodNotAllowed(opts.Logger))

		r.Get("/home", homeHandler.APIIndex)
	})

	router.Get(swaggerPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerPath+"/doc.json"),
	))
}

// AssetsHandler serves files under dir at prefix. Directories without an
// index.html are listed.
func AssetsHandler(prefix, dir string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
}
