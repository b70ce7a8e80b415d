package domain

// Member of the staffing roster. Address is the travel origin for estimates.
type StaffMember struct {
	StaffID         string
	Name            string
	Role            string
	Address         string
	HourlyRateCents int64
	Active          bool
}
