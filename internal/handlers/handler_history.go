package handlers

import (
	"net/http"
	"strconv"

	"river-watch/internal/middlewares"
	"river-watch/internal/models"
)

func GETStationHistoryHandler(ctx *middlewares.AppContext) {
	station, ok := stationFromRequest(ctx)
	if !ok {
		return
	}

	days := 7
	if raw := ctx.Request.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.SetJSONError(http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	if maxDays := ctx.Config.Data.HistoryMaxDays; days > maxDays {
		days = maxDays
	}

	points, err := ctx.Storage.HistoricalData(ctx, station, days)
	if err != nil {
		ctx.Logger.Error("Failed to fetch historical data",
			"station", station.Name,
			"days", days,
			"error", err,
		)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to fetch historical data")
		return
	}

	if points == nil {
		points = []models.LiveDataPoint{}
	}

	ctx.WriteJSON(http.StatusOK, points)
}
