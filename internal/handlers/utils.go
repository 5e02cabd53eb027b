package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"river-watch/internal/config"
	"river-watch/internal/middlewares"
)

// stationFromRequest resolves the {station} URL parameter against the
// configured station list. Writes the 404 itself so callers just return on
// !ok.
func stationFromRequest(ctx *middlewares.AppContext) (config.StationConfig, bool) {
	name := chi.URLParam(ctx.Request, "station")

	station, ok := ctx.Config.StationByName(name)
	if !ok {
		ctx.Logger.Debug("Request for unknown station", "station", name)
		ctx.SetJSONError(http.StatusNotFound, "Unknown station")
		return config.StationConfig{}, false
	}

	return station, true
}
