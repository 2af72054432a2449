package handlers

//go:generate mockgen -source=add_device.go -destination=add_device_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

const maxDeviceRecordSize = 1 << 20

// DeviceAdder defines the interface that the catalog service must implement.
type DeviceAdder interface {
	AddDevice(ctx context.Context, record json.RawMessage) (string, error)
}

// AddDeviceResponse represents a successful catalog append
// swagger:model AddDeviceResponse
type AddDeviceResponse struct {
	// default: success
	Status string `json:"status"`

	// default: Пристрій додано!
	Message string `json:"message"`

	// Catalog file the device was appended to
	// default: climate.json
	File string `json:"file"`
}

// NewAddDeviceHandler returns an HTTP handler that appends a device to its category catalog.
// @Summary Add catalog device
// @Description Appends the device record verbatim to the catalog of its category. name and brand are required.
// @Tags catalog
// @Accept json
// @Produce json
// @Param device body models.DeviceRecord true "Device record, extra fields are kept"
// @Success 200 {object} handlers.AddDeviceResponse
// @Failure 400 {object} handlers.StatusResponse "Invalid device record"
// @Failure 500 {object} handlers.StatusResponse "Catalog could not be written"
// @Router /admin/add-device [post]
func NewAddDeviceHandler(svc DeviceAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDeviceRecordSize))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		file, err := svc.AddDevice(r.Context(), body)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRecord) {
				writeError(w, http.StatusBadRequest, "Device name and brand are required")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, AddDeviceResponse{
			Status:  statusSuccess,
			Message: "Пристрій додано!",
			File:    file,
		})
	}
}
