package handlers

import (
	"net/http"

	"river-watch/internal/middlewares"
	"river-watch/internal/models"
	"river-watch/internal/utils"
)

var waterLevelPeriods = []string{"daily", "monthly", "yearly"}

func GETStationWaterLevelHandler(ctx *middlewares.AppContext) {
	station, ok := stationFromRequest(ctx)
	if !ok {
		return
	}

	period := ctx.Request.URL.Query().Get("period")
	if period == "" {
		period = "daily"
	}

	if !utils.IsStringInSlice(period, waterLevelPeriods) {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid period")
		return
	}

	var (
		points []models.WaterLevelPoint
		err    error
	)

	switch period {
	case "daily":
		points, err = ctx.Storage.DailyWaterLevels(ctx, station)
	case "monthly":
		points, err = ctx.Storage.MonthlyWaterLevels(ctx, station)
	case "yearly":
		points, err = ctx.Storage.YearlyWaterLevels(ctx, station)
	}

	if err != nil {
		ctx.Logger.Error("Failed to fetch water level data",
			"station", station.Name,
			"period", period,
			"error", err,
		)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to fetch water level data")
		return
	}

	if points == nil {
		points = []models.WaterLevelPoint{}
	}

	ctx.WriteJSON(http.StatusOK, points)
}
