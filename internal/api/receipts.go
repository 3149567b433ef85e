package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rewardworks/receipt-points/internal/models"
	"github.com/rewardworks/receipt-points/internal/points"
	"github.com/rewardworks/receipt-points/internal/store"
)

// ReceiptsHandler handles receipt-related API requests.
type ReceiptsHandler struct {
	store *store.Store
}

// NewReceiptsHandler creates a new ReceiptsHandler.
func NewReceiptsHandler(s *store.Store) *ReceiptsHandler {
	return &ReceiptsHandler{store: s}
}

// Process handles POST /receipts/process.
// @Summary Submit a receipt for points processing
// @Description Stores the receipt and returns the identifier used to retrieve its points later
// @Tags receipts
// @Accept json
// @Produce json
// @Success 200 {object} models.ProcessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receipts/process [post]
func (h *ReceiptsHandler) Process(w http.ResponseWriter, r *http.Request) {
	var receipt models.Receipt
	if err := json.NewDecoder(r.Body).Decode(&receipt); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "The receipt is invalid")
		return
	}

	id, err := h.store.SaveReceipt(receipt)
	if err != nil {
		slog.Error("failed to save receipt", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to save receipt")
		return
	}

	slog.Info("receipt stored", "id", id, "retailer", receipt.Retailer)
	writeJSON(w, http.StatusOK, models.ProcessResponse{ID: id})
}

// Points handles GET /receipts/{id}/points.
// @Summary Get the points awarded for a receipt
// @Description Looks up the stored receipt and returns its computed reward points
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} models.PointsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receipts/{id}/points [get]
func (h *ReceiptsHandler) Points(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	receipt, err := h.store.GetReceipt(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "No receipt found for that ID")
		} else {
			slog.Error("failed to get receipt", "error", err, "id", id)
			writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to get receipt")
		}
		return
	}

	total := points.Calculate(receipt)

	slog.Info("points computed", "id", id, "points", total)
	writeJSON(w, http.StatusOK, models.PointsResponse{Points: total})
}
