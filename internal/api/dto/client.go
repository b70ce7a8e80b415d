package dto

import "time"

type CreateClientRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

type ClientResponse struct {
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

type StaffResponse struct {
	StaffID         string `json:"staff_id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Address         string `json:"address"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	Active          bool   `json:"active"`
}

type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}
