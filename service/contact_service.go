package service

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"kala-gallery-me/models"
)

// emailPattern is intentionally loose: one @, no whitespace, a dot in the
// domain part
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService forwards contact form submissions to the third-party
// form-collection endpoint
type ContactService struct {
	submissionURL string
	client        *http.Client
}

// NewContactService creates a new ContactService. submissionURL may be
// empty; submissions then fail with a configuration error.
func NewContactService(submissionURL string) *ContactService {
	return &ContactService{
		submissionURL: submissionURL,
		client:        &http.Client{Timeout: 15 * time.Second},
	}
}

// ValidateContactRequest checks the form fields and returns the list of
// problems, empty when the request is submittable
func ValidateContactRequest(req models.ContactRequest) []string {
	var errors []string

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, "Full name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, "Email address is required")
	} else if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		errors = append(errors, "Please enter a valid email address")
	}
	if strings.TrimSpace(req.Reason) == "" {
		errors = append(errors, "Reason for contact is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		errors = append(errors, "Message is required")
	}

	return errors
}

// Submit forwards a validated contact request as a URL-encoded POST, the
// format the form-collection backend expects
func (s *ContactService) Submit(req models.ContactRequest) error {
	if s.submissionURL == "" {
		return fmt.Errorf("form submission URL not configured")
	}

	if errs := ValidateContactRequest(req); len(errs) > 0 {
		return fmt.Errorf("invalid contact request: %s", strings.Join(errs, "; "))
	}

	params := url.Values{}
	params.Set("Full Name", strings.TrimSpace(req.Name))
	params.Set("Email Address", strings.TrimSpace(req.Email))
	params.Set("Reason for Contact", strings.TrimSpace(req.Reason))
	params.Set("Message", strings.TrimSpace(req.Message))

	resp, err := s.client.Post(s.submissionURL, "application/x-www-form-urlencoded",
		strings.NewReader(params.Encode()))
	if err != nil {
		log.Printf("❌ Contact form submission failed: %v", err)
		return fmt.Errorf("failed to submit contact form: %w", err)
	}
	defer resp.Body.Close()

	// Form-collection endpoints answer with redirects or opaque pages;
	// anything below 500 counts as accepted
	if resp.StatusCode >= http.StatusInternalServerError {
		log.Printf("❌ Contact form endpoint returned status %d", resp.StatusCode)
		return fmt.Errorf("form endpoint returned status %d", resp.StatusCode)
	}

	log.Printf("✓ Contact form submitted for %s", strings.TrimSpace(req.Email))
	return nil
}
