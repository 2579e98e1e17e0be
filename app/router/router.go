package router

import (
	"net/http"
	"strings"

	"kala-gallery-me/app/controller"
)

type Controllers struct {
	Design   *controller.DesignController
	Contact  *controller.ContactController
	Content  *controller.ContentController
	Lookbook *controller.LookbookController
	Sync     *controller.SyncController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Collection listing and search
	http.HandleFunc("/api/designs", controllers.Design.ListDesigns)

	// Filter vocabulary
	http.HandleFunc("/api/designs/filters", controllers.Design.GetFilterVocabulary)

	// Design detail and image - /api/designs/{id} and /api/designs/{id}/image
	http.HandleFunc("/api/designs/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/designs/")
		if path == "" || path == "filters" {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if strings.HasSuffix(path, "/image") {
			id := strings.TrimSuffix(path, "/image")
			controllers.Design.GetDesignImage(w, r, id)
			return
		}
		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		controllers.Design.GetDesignDetail(w, r, path)
	})

	// Site content
	http.HandleFunc("/api/content", controllers.Content.GetContent)

	// Contact form forwarding
	http.HandleFunc("/api/contact", controllers.Contact.SubmitContact)

	// Lookbook rendering and PDF download
	http.HandleFunc("/admin/lookbook/render", controllers.Lookbook.RenderLookbook)
	http.HandleFunc("/admin/lookbook/pdf", controllers.Lookbook.DownloadLookbookPDF)

	// Drive synchronization
	http.HandleFunc("/admin/designs/sync", controllers.Sync.SyncGallery)
}
