package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/itydee48-oss/crowntrade-academy/internal/auth"
	"github.com/itydee48-oss/crowntrade-academy/internal/database"
	"github.com/itydee48-oss/crowntrade-academy/internal/handlers"
	"github.com/itydee48-oss/crowntrade-academy/internal/ledger"
	"github.com/itydee48-oss/crowntrade-academy/internal/routes"
	"github.com/itydee48-oss/crowntrade-academy/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Persistent Store ---
	// MySQL when DB_DSN is set, otherwise a local JSON file store.
	var (
		st        store.Store
		fileStore *store.FileStore
	)
	if os.Getenv("DB_DSN") != "" {
		db, err := database.OpenDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		st, err = store.NewSQLStore(db)
		if err != nil {
			log.Fatalf("Failed to initialize SQL store: %v", err)
		}
	} else {
		path := os.Getenv("STORE_PATH")
		if path == "" {
			path = "./data/crowntrade.json"
		}
		if err := os.MkdirAll("./data", 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		fs, err := store.OpenFileStore(path)
		if err != nil {
			log.Fatalf("Failed to open store file: %v", err)
		}
		st = fs
		fileStore = fs
	}

	// 2. --- Admin Credential Seed ---
	credentials := auth.NewCredentialStore(st)
	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "change-me-now"
		log.Println("WARNING: ADMIN_PASSWORD not set, using the default seed password.")
	}
	if err := credentials.Seed(adminUser, adminPass); err != nil {
		log.Fatalf("Failed to seed admin credentials: %v", err)
	}

	// 3. --- Core Ledger ---
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	core := ledger.New(st, ledger.WithBaseURL(baseURL))

	app := &handlers.Handlers{
		Ledger: core,
		Auth:   credentials,
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			app.PollInterval = d
		}
	}
	if v := os.Getenv("POLL_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			app.PollMaxAttempts = n
		}
	}

	// 4. --- Background Worker (store backup) ---
	// The file store gets a periodic on-disk backup; the SQL store is
	// the database's problem.
	if fileStore != nil {
		interval := time.Hour
		if v := os.Getenv("BACKUP_INTERVAL"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				interval = d
			}
		}
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			backupPath := os.Getenv("STORE_BACKUP_PATH")
			if backupPath == "" {
				backupPath = "./data/crowntrade.json.bak"
			}
			for range ticker.C {
				if err := fileStore.Backup(backupPath); err != nil {
					log.Printf("Store backup failed: %v", err)
				}
			}
		}()
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting CrownTrade referral API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
