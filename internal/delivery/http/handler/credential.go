package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/user/market-dashboard/internal/delivery/http/request"
	"github.com/user/market-dashboard/internal/delivery/http/response"
	"github.com/user/market-dashboard/internal/repository"
	"github.com/user/market-dashboard/pkg/utils"
	"go.uber.org/zap"
)

func (h *Handler) HandleSaveCredential(w http.ResponseWriter, r *http.Request) {
	var req request.SaveCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		h.writeJSONError(w, "Please enter a valid API key", http.StatusBadRequest)
		return
	}

	if err := h.gateway.SaveCredential(r.Context(), token); err != nil {
		h.logger.Error("Failed to save API key", zap.Error(err))
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.CredentialResponse{Configured: true, MaskedToken: utils.MaskToken(token)})
}

func (h *Handler) HandleGetCredential(w http.ResponseWriter, r *http.Request) {
	token, err := h.gateway.GetCredential(r.Context())
	if errors.Is(err, repository.ErrCredentialNotFound) {
		h.writeJSON(w, http.StatusOK, response.CredentialResponse{Configured: false})
		return
	}
	if err != nil {
		h.logger.Error("Failed to read API key", zap.Error(err))
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.CredentialResponse{Configured: true, MaskedToken: utils.MaskToken(token)})
}

func (h *Handler) HandleRemoveCredential(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.RemoveCredential(r.Context()); err != nil {
		h.logger.Error("Failed to remove API key", zap.Error(err))
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, response.MessageResponse{Status: "success", Message: "API key removed successfully"})
}

// HandleTestCredential verifies a candidate key without storing it.
func (h *Handler) HandleTestCredential(w http.ResponseWriter, r *http.Request) {
	var req request.TestCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		h.writeJSONError(w, "Please enter a valid API key", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, response.TestCredentialResponse{Valid: h.gateway.TestCredential(r.Context(), token)})
}
