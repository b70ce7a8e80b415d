package handlers

import (
	"event-staffing-service/internal/api/dto"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/services"
	"net/http"
	"strconv"
	"strings"
)

// ClientHandler lists and creates clients.
type ClientHandler struct {
	Dashboard *services.DashboardService
}

func (h *ClientHandler) Clients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// Client serves GET /clients/{id}, the Location returned on create.
func (h *ClientHandler) Client(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/clients/")
	if id == "" || strings.Contains(id, "/") {
		writeDomainError(w, r, "get client", domain.NewNotFoundError("client", id))
		return
	}

	c, err := h.Dashboard.GetClient(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "get client", err)
		return
	}

	writeJSON(w, r, http.StatusOK, clientResponse(c))
}

func (h *ClientHandler) list(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Dashboard.ListClients(r.Context())
	if err != nil {
		writeDomainError(w, r, "list clients", err)
		return
	}

	res := dto.ListClientsResponse{Clients: make([]dto.ClientResponse, 0, len(clients))}
	for _, c := range clients {
		res.Clients = append(res.Clients, clientResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ClientHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.Dashboard.CreateClient(r.Context(), services.CreateClientRequest{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		writeDomainError(w, r, "create client", err)
		return
	}

	w.Header().Set("Location", "/clients/"+c.ClientID)
	writeJSON(w, r, http.StatusCreated, clientResponse(c))
}

func clientResponse(c *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ClientID:    c.ClientID,
		Name:        c.Name,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
	}
}

// StaffHandler exposes the staff roster.
type StaffHandler struct {
	Dashboard *services.DashboardService
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	activeOnly := false
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeBadRequest(w, r, "active must be true or false")
			return
		}
		activeOnly = v
	}

	staff, err := h.Dashboard.ListStaff(r.Context(), activeOnly)
	if err != nil {
		writeDomainError(w, r, "list staff", err)
		return
	}

	res := dto.ListStaffResponse{Staff: make([]dto.StaffResponse, 0, len(staff))}
	for _, m := range staff {
		res.Staff = append(res.Staff, dto.StaffResponse{
			StaffID:         m.StaffID,
			Name:            m.Name,
			Role:            m.Role,
			Address:         m.Address,
			HourlyRateCents: m.HourlyRateCents,
			Active:          m.Active,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
