package handlers

//go:generate mockgen -source=devices.go -destination=devices_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// DeviceLister defines the interface that the catalog service must implement.
type DeviceLister interface {
	ListDevices(ctx context.Context, category string) (string, []json.RawMessage, error)
}

// DevicesResponse represents a category catalog
// swagger:model DevicesResponse
type DevicesResponse struct {
	// default: success
	Status string `json:"status"`

	// default: climate.json
	File    string            `json:"file"`
	Library []json.RawMessage `json:"library" swaggertype:"array,object"`
}

// NewDevicesHandler returns an HTTP handler that lists a category catalog.
// @Summary List catalog devices
// @Description Returns the catalog of a category. Unknown or missing categories map to devices.json.
// @Tags catalog
// @Produce json
// @Param category query string false "Device category"
// @Success 200 {object} handlers.DevicesResponse
// @Failure 500 {object} handlers.StatusResponse "Catalog could not be read"
// @Router /api/devices [get]
func NewDevicesHandler(svc DeviceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, library, err := svc.ListDevices(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, DevicesResponse{
			Status:  statusSuccess,
			File:    file,
			Library: library,
		})
	}
}
