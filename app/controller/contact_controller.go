package controller

import (
	"encoding/json"
	"net/http"

	"kala-gallery-me/models"
	"kala-gallery-me/service"
)

// ContactController handles contact form submissions
type ContactController struct {
	contactService *service.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *service.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// SubmitContact handles POST /api/contact
// Validates the form and forwards it to the form-collection endpoint
func (c *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := service.ValidateContactRequest(req); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":     false,
			"errors": errs,
		})
		return
	}

	if err := c.contactService.Submit(req); err != nil {
		http.Error(w, "Failed to submit contact form", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"ok":true}`))
}
