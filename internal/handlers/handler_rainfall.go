package handlers

import (
	"net/http"

	"river-watch/internal/middlewares"
	"river-watch/internal/models"
	"river-watch/internal/utils"
)

var rainfallPeriods = []string{"half-hourly", "monthly", "yearly"}

func GETStationRainfallHandler(ctx *middlewares.AppContext) {
	station, ok := stationFromRequest(ctx)
	if !ok {
		return
	}

	period := ctx.Request.URL.Query().Get("period")
	if period == "" {
		period = "half-hourly"
	}

	if !utils.IsStringInSlice(period, rainfallPeriods) {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid period")
		return
	}

	var (
		points []models.RainfallPoint
		err    error
	)

	switch period {
	case "half-hourly":
		points, err = ctx.Storage.HalfHourlyRainfall(ctx, station)
	case "monthly":
		points, err = ctx.Storage.MonthlyRainfall(ctx, station)
	case "yearly":
		points, err = ctx.Storage.YearlyRainfall(ctx, station)
	}

	if err != nil {
		ctx.Logger.Error("Failed to fetch rainfall data",
			"station", station.Name,
			"period", period,
			"error", err,
		)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to fetch rainfall data")
		return
	}

	if points == nil {
		points = []models.RainfallPoint{}
	}

	ctx.WriteJSON(http.StatusOK, points)
}
