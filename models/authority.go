package models

import "github.com/google/uuid"

// Authority is the district department an issue is assigned to
type Authority struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	District     string    `json:"district"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Category     string    `json:"category,omitempty"`
}

// UpdateAuthorityRequest is a partial authority update
type UpdateAuthorityRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=255"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
}

// Districts is the canonical district list. Configuration data, not
// load-bearing; the backend accepts any district string.
var Districts = []string{
	"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar",
	"Junagadh", "Gandhinagar", "Anand", "Bharuch", "Mehsana", "Patan",
	"Porbandar", "Surendranagar", "Navsari", "Valsad", "Kutch", "Banaskantha",
	"Sabarkantha", "Panchmahals", "Dahod", "Kheda", "Narmada", "Tapi",
	"Dang", "Aravalli", "Botad", "Chhota Udaipur", "Devbhoomi Dwarka",
	"Gir Somnath", "Mahisagar", "Morbi",
}

// Categories is the canonical issue category list.
var Categories = []string{
	"Roads", "Water Supply", "Sewerage", "Electricity", "Garbage",
	"Street Lights", "Public Transport", "Healthcare", "Education",
	"Public Safety", "Encroachment", "Environment", "Other",
}
