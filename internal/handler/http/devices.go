package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	devices, err := h.services.DeviceService.FindAllDevices(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDevices").Msg("error getting devices")
		utils.WriteError(w, app.MsgErrorGettingDevices, statusFromError(err))
		return
	}
	if devices == nil {
		devices = []models.Device{}
	}

	utils.WriteJSON(w, devices, http.StatusOK)
}

func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := deviceIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDevice").Send()
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	device, err := h.services.DeviceService.FindDeviceByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDevice").Int64("id", id).Msg("error getting device")
		utils.WriteError(w, app.MsgErrorGettingDevice, statusFromError(err))
		return
	}

	utils.WriteJSON(w, device, http.StatusOK)
}

func (h *Handler) createDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	device, err := decodeDevice(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDevice").Send()
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err = h.services.DeviceService.CreateDevice(r.Context(), device); err != nil {
		log.Err(err).Str("func", "*Handler.createDevice").Int64("id", device.ID).Msg("error creating device")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/devices/%d", device.ID))
	utils.WriteJSON(w, device, http.StatusCreated)
}

func (h *Handler) updateDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := deviceIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDevice").Send()
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	device, err := decodeDevice(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDevice").Send()
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	// the path is authoritative; a body without id is accepted
	if device.ID != 0 && device.ID != id {
		utils.WriteError(w, ErrDeviceIDMismatch.Error(), statusFromError(ErrDeviceIDMismatch))
		return
	}
	device.ID = id

	if err = h.services.DeviceService.UpdateDevice(r.Context(), device); err != nil {
		log.Err(err).Str("func", "*Handler.updateDevice").Int64("id", id).Msg("error updating device")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, device, http.StatusOK)
}

func (h *Handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := deviceIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteDevice").Send()
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if err = h.services.DeviceService.DeleteDevice(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDevice").Int64("id", id).Msg("error deleting device")
		utils.WriteError(w, app.MsgErrorDeletingDevice, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func deviceIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidDeviceID
	}
	return id, nil
}

func decodeDevice(r *http.Request) (models.Device, error) {
	var device models.Device
	if err := json.NewDecoder(r.Body).Decode(&device); err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return device, nil
}
