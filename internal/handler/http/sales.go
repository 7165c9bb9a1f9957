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

// sell forwards a sale to the remote authority and answers with the local
// record, located under the id the remote side assigned.
func (h *Handler) sell(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sell").Send()
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	sale, err := h.services.SaleService.Sell(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sell").Int64("device_id", req.DeviceID).Msg("error forwarding sale")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/sales/%d", sale.ID))
	utils.WriteJSON(w, sale, http.StatusCreated)
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.services.SaleService.FindAllSales(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSales").Msg("error getting sales")
		utils.WriteError(w, app.MsgErrorGettingSales, statusFromError(err))
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}

	utils.WriteJSON(w, sales, http.StatusOK)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := saleIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSale").Send()
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	sale, err := h.services.SaleService.FindSaleByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSale").Int64("id", id).Msg("error getting sale")
		utils.WriteError(w, app.MsgErrorGettingSale, statusFromError(err))
		return
	}

	utils.WriteJSON(w, sale, http.StatusOK)
}

func (h *Handler) listRemoteSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.services.SaleService.ListRemoteSales(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listRemoteSales").Msg("error getting remote sales")
		utils.WriteError(w, app.MsgErrorGettingRemoteSales, statusFromError(err))
		return
	}

	utils.WriteJSON(w, sales, http.StatusOK)
}

func (h *Handler) getRemoteSale(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := saleIDFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRemoteSale").Send()
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	sale, err := h.services.SaleService.GetRemoteSale(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRemoteSale").Int64("id", id).Msg("error getting remote sale")
		utils.WriteError(w, app.MsgErrorGettingRemoteSale, statusFromError(err))
		return
	}

	utils.WriteJSON(w, sale, http.StatusOK)
}

func saleIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidSaleID
	}
	return id, nil
}
