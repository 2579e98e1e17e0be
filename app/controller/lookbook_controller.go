package controller

import (
	"fmt"
	"net/http"

	"kala-gallery-me/service"
)

// LookbookController handles lookbook rendering and PDF generation
type LookbookController struct {
	lookbookService *service.LookbookService
}

// NewLookbookController creates a new LookbookController
func NewLookbookController(lookbookService *service.LookbookService) *LookbookController {
	return &LookbookController{lookbookService: lookbookService}
}

// RenderLookbook handles GET /admin/lookbook/render
// Serves the HTML that headless Chrome prints; also useful for previewing
func (c *LookbookController) RenderLookbook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html, err := c.lookbookService.RenderLookbookHTML(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render lookbook: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// DownloadLookbookPDF handles GET /admin/lookbook/pdf
func (c *LookbookController) DownloadLookbookPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pdf, err := c.lookbookService.GeneratePDF(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="collection-lookbook.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
