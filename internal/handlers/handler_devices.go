package handlers

import (
	"net/http"

	"river-watch/internal/middlewares"
	"river-watch/internal/models"
)

func GETDevicesMetadataHandler(ctx *middlewares.AppContext) {
	devices, err := ctx.Storage.DeviceMetadata(ctx)
	if err != nil {
		ctx.Logger.Error("Failed to fetch device metadata", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to fetch device metadata")
		return
	}

	if devices == nil {
		devices = []models.DeviceMetadata{}
	}

	ctx.WriteJSON(http.StatusOK, devices)
}
