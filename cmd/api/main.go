package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/arvandbazaar/storefront-backend/internal/modules/auth"
	"github.com/arvandbazaar/storefront-backend/internal/modules/catalog"
	"github.com/arvandbazaar/storefront-backend/internal/modules/order"
	"github.com/arvandbazaar/storefront-backend/internal/modules/sheets"
	"github.com/arvandbazaar/storefront-backend/internal/modules/syncer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from the environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Sheet source ────────────────────────────────────────
	var reader sheets.Reader
	if os.Getenv("SHEETS_FAKE") == "1" {
		log.Println("SHEETS_FAKE=1: serving the built-in demo sheet")
		reader = sheets.NewStaticReader()
	} else {
		reader = sheets.NewClient(os.Getenv("GOOGLE_SHEET_ID"), os.Getenv("GOOGLE_API_KEY"))
	}

	// ── Admin gate ──────────────────────────────────────────
	authService := auth.NewService(
		os.Getenv("ADMIN_USERNAME"),
		os.Getenv("ADMIN_PASSWORD_HASH"),
		os.Getenv("JWT_SECRET"),
	)
	auth.NewHandler(authService).RegisterRoutes(router)
	gate := auth.Middleware(authService, os.Getenv("SYNC_API_KEY"))

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, reader)
	cache := catalog.NewCategoryCache(catalog.DefaultFreshnessWindow)
	catalog.NewHandler(catalogService, cache).RegisterRoutes(router, gate)

	// ── Sync engine ─────────────────────────────────────────
	engine := syncer.NewEngine(reader, catalogRepo)
	syncer.NewHandler(engine, os.Getenv("CRON_SECRET_TOKEN")).RegisterRoutes(router, gate)

	if minutes, err := strconv.Atoi(os.Getenv("SYNC_INTERVAL_MINUTES")); err == nil && minutes > 0 {
		scheduler := syncer.NewScheduler(engine, time.Duration(minutes)*time.Minute)
		scheduler.Start()
		defer scheduler.Stop()
	}

	// ── Orders ──────────────────────────────────────────────
	notifier := buildNotifier()
	orderService := order.NewService(notifier)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Storefront API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// buildNotifier wires the Telegram order channel, falling back to log
// output when the bot is not configured so local development still
// shows submitted orders.
func buildNotifier() order.Notifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if token == "" || err != nil {
		log.Println("Telegram not configured, logging orders instead")
		return order.NewLogNotifier()
	}

	notifier, err := order.NewTelegramNotifier(token, chatID)
	if err != nil {
		log.Printf("Telegram bot init failed (%v), logging orders instead", err)
		return order.NewLogNotifier()
	}
	return notifier
}
