package app

import (
	"fmt"
	"log"
	"os"

	"kala-gallery-me/app/controller"
	"kala-gallery-me/app/router"
	"kala-gallery-me/db"
	"kala-gallery-me/ranking"
	"kala-gallery-me/repository"
	"kala-gallery-me/service"
)

// Initialize initializes the application.
// A misconfigured backend store is not fatal: the catalog degrades to
// empty results so the marketing pages keep rendering.
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		log.Printf("⚠️  Database unavailable, serving degraded catalog: %v", err)
	}

	// Load site content configuration
	contentPath := os.Getenv("CONTENT_PATH")
	if contentPath == "" {
		contentPath = "content.json"
	}
	contentService, err := service.NewContentService(contentPath)
	if err != nil {
		return fmt.Errorf("failed to load site content: %w", err)
	}

	// Initialize repository and catalog service
	designRepo := repository.NewDesignRepository(contentService.StorageConfig())
	catalogService := service.NewCatalogService(designRepo, ranking.NewEngine())

	// Drive-backed services are optional: without credentials the sync
	// and image proxy endpoints report unavailable
	var driveService service.DriveServiceInterface
	var syncService service.SyncServiceInterface
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath != "" {
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			log.Printf("⚠️  Drive service unavailable: %v", err)
		} else {
			driveService = ds
			syncService = service.NewSyncService(ds, designRepo)
		}
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, Drive sync disabled")
	}

	// Image cache for the optimized image endpoint
	if err := service.EnsureCacheDir(); err != nil {
		log.Printf("⚠️  Could not create image cache directory: %v", err)
	}

	// Lookbook rendering
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}
	lookbookService := service.NewLookbookService(catalogService, contentService, baseURL)

	// Contact form forwarding
	contactService := service.NewContactService(contentService.FormSubmissionURL())

	// Create controllers
	controllers := &router.Controllers{
		Design:   controller.NewDesignController(catalogService, driveService),
		Contact:  controller.NewContactController(contactService),
		Content:  controller.NewContentController(contentService),
		Lookbook: controller.NewLookbookController(lookbookService),
		Sync:     controller.NewSyncController(syncService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
