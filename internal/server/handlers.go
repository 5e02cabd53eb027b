package server

import (
	"net/http"
	"strings"
	"time"

	"river-watch/internal/handlers"
	"river-watch/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Handle("/js/*", http.StripPrefix("/js/", http.FileServer(http.Dir("web/static/js"))))
	r.Handle("/css/*", http.StripPrefix("/css/", http.FileServer(http.Dir("web/static/css"))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir("web/static")))

	// SPA fallback: the auth result pages (/auth/success, /auth/error) are
	// client-side routes.
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "web/static/index.html")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.Get("/login", ctx.HandlerFunc(handlers.GETLoginHandler))
			r.Get("/callback", ctx.HandlerFunc(handlers.GETCallbackHandler))
			r.Get("/token", ctx.HandlerFunc(handlers.GETTokenHandler))
			r.Post("/refresh", ctx.HandlerFunc(handlers.POSTRefreshHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSessionAuth)

			r.Get("/stations", ctx.HandlerFunc(handlers.GETStationsHandler))
			r.Route("/stations/{station}", func(r chi.Router) {
				r.Get("/summary", ctx.HandlerFunc(handlers.GETStationSummaryHandler))
				r.Get("/rainfall", ctx.HandlerFunc(handlers.GETStationRainfallHandler))
				r.Get("/water-level", ctx.HandlerFunc(handlers.GETStationWaterLevelHandler))
				r.Get("/history", ctx.HandlerFunc(handlers.GETStationHistoryHandler))
			})

			r.Get("/devices/metadata", ctx.HandlerFunc(handlers.GETDevicesMetadataHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
