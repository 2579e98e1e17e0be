package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"kala-gallery-me/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const lookbookItemsPerPage = 9

// LookbookService renders the active collection into a printable PDF
// lookbook using headless Chrome
type LookbookService struct {
	catalog *CatalogService
	content *ContentService
	baseURL string // Base URL for the render endpoint (e.g. "http://localhost:8080")
}

// NewLookbookService creates a new LookbookService
func NewLookbookService(catalog *CatalogService, content *ContentService, baseURL string) *LookbookService {
	return &LookbookService{
		catalog: catalog,
		content: content,
		baseURL: baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// paginateItems splits the collection into lookbook pages
func paginateItems(items []models.DisplayItem) [][]models.DisplayItem {
	var pages [][]models.DisplayItem
	for i := 0; i < len(items); i += lookbookItemsPerPage {
		end := i + lookbookItemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}

// RenderLookbookHTML renders the lookbook HTML for the active collection
func (s *LookbookService) RenderLookbookHTML(ctx context.Context) (string, error) {
	items, err := s.catalog.GetCollection(ctx)
	if err != nil {
		// An empty lookbook still renders; the error was already logged
		items = []models.DisplayItem{}
	}

	content := s.content.Content()
	templateData := struct {
		Title    string
		Subtitle string
		Pages    [][]models.DisplayItem
	}{
		Title:    content.Design.Title,
		Subtitle: content.Design.Subtitle,
		Pages:    paginateItems(items),
	}

	templatePath := filepath.Join("templates", "lookbook.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse lookbook template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to render lookbook template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF renders the lookbook through headless Chrome and prints it
// to an A4 PDF
func (s *LookbookService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	// Detect Chrome/Chromium path and configure chromedp
	chromePath := detectChromePath()
	allocCtx := ctxTimeout
	if chromePath != "" {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(chromePath),
			chromedp.NoSandbox,
			chromedp.Flag("enable-print-preview", true),
		)
		var allocCancel context.CancelFunc
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctxTimeout, opts...)
		defer allocCancel()
	}

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/lookbook/render", s.baseURL)
	log.Printf("📄 Generating lookbook PDF from %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000), // A4 width at 96 DPI, tall viewport for all pages
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for images to settle before printing
		chromedp.Evaluate(`
			(function() {
				return Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
					return new Promise((resolve) => {
						if (img.complete) {
							resolve();
							return;
						}
						const timeout = setTimeout(() => resolve(), 5000);
						img.onload = () => { clearTimeout(timeout); resolve(); };
						img.onerror = () => { clearTimeout(timeout); resolve(); };
					});
				}));
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait; page breaks come from CSS page-break-after
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
