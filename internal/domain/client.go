package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a customer that books catered events.
type Client struct {
	ClientID    string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
}

// NewClient validates the fields and assigns a fresh identifier.
func NewClient(name, contactName, email, phone, address string, now time.Time) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("client name is required")
	}

	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, NewValidationError("client email is invalid")
	}

	return &Client{
		ClientID:    uuid.NewString(),
		Name:        name,
		ContactName: strings.TrimSpace(contactName),
		Email:       email,
		Phone:       strings.TrimSpace(phone),
		Address:     strings.TrimSpace(address),
		CreatedAt:   now.UTC(),
	}, nil
}
