package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/electrohub/storefront-api/advisor"
	"github.com/electrohub/storefront-api/kvstore"
	"github.com/electrohub/storefront-api/payment"
	"github.com/electrohub/storefront-api/routes"
	"github.com/electrohub/storefront-api/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("✅ Starting ElectroHub storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	// Session persistence (the localStorage stand-in)
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	kv, err := kvstore.OpenFile(filepath.Join(dataDir, "sessions.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to open session store")
	}
	registry := store.NewRegistry(kv)

	// Advisory chat client
	advisorClient := advisor.New(os.Getenv("ADVISOR_URL"), os.Getenv("ADVISOR_API_KEY"))

	// Mock payment gateway
	gateway := payment.New(paymentDelay())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Registry: registry,
		Advisor:  advisorClient,
		Gateway:  gateway,
	})

	// Start session-data backup routine at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(dataDir, filepath.Join(dataDir, "backup"), 4*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Msgf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

// paymentDelay reads the simulated settlement delay, defaulting to the
// storefront's two-second processing window.
func paymentDelay() time.Duration {
	if ms := os.Getenv("PAYMENT_DELAY_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
		log.Warn().Str("value", os.Getenv("PAYMENT_DELAY_MS")).Msg("invalid PAYMENT_DELAY_MS, using default")
	}
	return 2 * time.Second
}

// startDailyBackupAtFixedTime backs up session data daily at a fixed
// hour and removes old backups.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Info().Msgf("⏳ Next session-data backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDataFiles(srcDir, destDir); err != nil {
			log.Error().Err(err).Msg("❌ Failed to back up session data")
		} else {
			log.Info().Msgf("✅ Session data backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDataFiles copies the regular files at the top of srcDir (the
// backup directory itself is skipped so backups never nest).
func copyDataFiles(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to read backup directory")
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Error().Err(err).Msgf("❌ Failed to remove old backup %s", folderPath)
			} else {
				log.Info().Msgf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
