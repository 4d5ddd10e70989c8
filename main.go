package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakehouse/cart"
	"bakehouse/checkout"
	"bakehouse/config"
	"bakehouse/ratelim"
	"bakehouse/routes"
	"bakehouse/stash"
	"bakehouse/uploads"
	"bakehouse/wishlist"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// newBlob picks the stash backend from config.
func newBlob(cfg *config.Config) stash.Blob {
	switch cfg.StashBackend {
	case "redis":
		return stash.NewRedis(cfg.RedisAddr)
	case "memory":
		return stash.NewMemory()
	default:
		blob, err := stash.NewFile(cfg.DataDir)
		if err != nil {
			log.Fatalf("stash dir %s: %v", cfg.DataDir, err)
		}
		return blob
	}
}

func setupRouter(cfg *config.Config, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	blob := newBlob(cfg)

	cartStore := cart.NewStore(blob, cfg.MinQuantity)
	wishlistStore := wishlist.NewStore(blob)
	compiler := &checkout.Compiler{
		Pricing: checkout.Pricing{
			TaxRateBasisPoints: cfg.TaxRateBasisPoints,
			DeliveryFees:       cfg.DeliveryFees,
			DeliveryETA:        cfg.DeliveryETA,
		},
		BusinessName:   "Bakehouse",
		Currency:       cfg.CurrencyLabel,
		WhatsAppNumber: cfg.WhatsAppNumber,
	}

	uploadHandler, err := uploads.NewHandler(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddCatalogRoutes(router)
	routes.AddCartRoutes(router, cart.NewHandler(cartStore), rateLimiter)
	routes.AddWishlistRoutes(router, wishlist.NewHandler(wishlistStore), rateLimiter)
	routes.AddCheckoutRoutes(router, checkout.NewHandler(cartStore, blob, compiler), rateLimiter)
	routes.AddUploadRoutes(router, uploadHandler, rateLimiter)
	routes.AddStaticRoutes(router, cfg.UploadDir)

	return router
}

func main() {
	cfg := config.Load()

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(cfg, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Session-ID"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
