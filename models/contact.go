package models

// ContactRequest represents a contact form submission from the website
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}
