package handlers

import (
	"net/http"

	"river-watch/internal/middlewares"
)

func GETStationsHandler(ctx *middlewares.AppContext) {
	stations := make([]StationInfo, 0, len(ctx.Config.Stations))
	for _, station := range ctx.Config.Stations {
		stations = append(stations, StationInfo{
			Name:     station.Name,
			SourceID: station.SourceID,
		})
	}

	ctx.WriteJSON(http.StatusOK, stations)
}

// GETStationSummaryHandler serves the cached headline figures for one
// station. The data service falls back to a live query on a cache miss.
func GETStationSummaryHandler(ctx *middlewares.AppContext) {
	station, ok := stationFromRequest(ctx)
	if !ok {
		return
	}

	summary, err := ctx.DataService.Summary(ctx, station)
	if err != nil {
		ctx.Logger.Error("Failed to fetch station summary",
			"station", station.Name,
			"error", err,
		)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to fetch summary")
		return
	}

	ctx.WriteJSON(http.StatusOK, summary)
}
