package handlers

import (
	"encoding/json"
	"errors"
	"event-staffing-service/internal/api/dto"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/obs"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	kindInternal         = "internal"
	kindMethodNotAllowed = "method_not_allowed"
	kindUnauthorized     = "unauthorized"
	kindForbidden        = "forbidden"

	maxBodyBytes = 1 << 20
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode response failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, kind, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg, Kind: kind})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, http.StatusBadRequest, string(domain.KindValidation), msg)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, kindMethodNotAllowed, "method not allowed")
}

// StatusFor maps a domain error to its HTTP status. Unclassified errors are 500.
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindRouteUnavailable:
		return http.StatusUnprocessableEntity
	case domain.KindService, domain.KindMalformedResponse, domain.KindMissingDistance:
		return http.StatusBadGateway
	case domain.KindTransport:
		var te *domain.TransportError
		if errors.As(err, &te) && te.Timeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError renders err with its mapped status. Internal details of
// unclassified errors are logged, not returned.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		zap.L().Error(op+" failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, status, kindInternal, "internal server error")
		return
	}

	writeError(w, r, status, string(domain.KindOf(err)), err.Error())
}

// decodeJSON reads exactly one JSON object into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeBadRequest(w, r, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeBadRequest(w, r, "body must contain only one JSON object")
		return false
	}

	return true
}

// Unauthorized asks the client for basic-auth credentials.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Basic realm="settings", charset="UTF-8"`)
	writeError(w, r, http.StatusUnauthorized, kindUnauthorized, "unauthorized")
}

// Forbidden rejects a request outright, independent of credentials.
func Forbidden(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, http.StatusForbidden, kindForbidden, msg)
}
