package entity

import (
	"strings"
	"time"
)

// Lead is a single contact-form submission. It lives for one request and is never stored.
type Lead struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Company         string    `json:"company,omitempty"`
	ServiceInterest string    `json:"serviceInterest"`
	ProjectDetails  string    `json:"projectDetails"`
	Budget          string    `json:"budget,omitempty"`
	Timeline        string    `json:"timeline,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// MissingRequired returns the json names of required fields left blank.
func (l Lead) MissingRequired() []string {
	var missing []string
	required := []struct {
		field string
		value string
	}{
		{"name", l.Name},
		{"email", l.Email},
		{"serviceInterest", l.ServiceInterest},
		{"projectDetails", l.ProjectDetails},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	return missing
}
