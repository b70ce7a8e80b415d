package handlers

import (
	"event-staffing-service/internal/api/dto"
	"event-staffing-service/internal/ports"
	"net/http"
	"strings"
)

// SettingsHandler manages the stored routing API key. The key itself is
// never returned.
type SettingsHandler struct {
	Credentials ports.CredentialStore
}

func (h *SettingsHandler) APIKey(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		_, found, err := h.Credentials.Get(r.Context())
		if err != nil {
			writeDomainError(w, r, "read api key", err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.APIKeyStatusResponse{Configured: found})

	case http.MethodPut:
		var req dto.SetAPIKeyRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.APIKey) == "" {
			writeBadRequest(w, r, "api_key is required")
			return
		}
		if err := h.Credentials.Set(r.Context(), req.APIKey); err != nil {
			writeDomainError(w, r, "set api key", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		if err := h.Credentials.Remove(r.Context()); err != nil {
			writeDomainError(w, r, "remove api key", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}
