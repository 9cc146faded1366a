package dto

import "strings"

// ContactSubmission is the body of POST /api/contact.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Normalize trims surrounding whitespace so blank fields fail "required".
func (s *ContactSubmission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)
}

type ContactResponse struct {
	Success bool `json:"success"`
}
