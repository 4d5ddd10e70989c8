package routes

import (
	"net/http"

	"bakehouse/cart"
	"bakehouse/catalog"
	"bakehouse/checkout"
	"bakehouse/middleware"
	"bakehouse/ratelim"
	"bakehouse/uploads"
	"bakehouse/wishlist"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/catalog/products", catalog.GetProducts)
	router.GET("/api/catalog/products/:productid", catalog.GetProduct)
	router.GET("/api/catalog/categories", catalog.GetCategories)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/cart", middleware.WithSession(h.GetCart))
	router.GET("/api/cart/summary", middleware.WithSession(h.GetCartSummary))
	router.POST("/api/cart/items", rl.Limit(middleware.WithSession(h.AddToCart)))
	router.PUT("/api/cart/items/:index", rl.Limit(middleware.WithSession(h.UpdateQuantity)))
	router.DELETE("/api/cart/items/:index", rl.Limit(middleware.WithSession(h.RemoveFromCart)))
	router.DELETE("/api/cart", rl.Limit(middleware.WithSession(h.ClearCart)))
}

func AddWishlistRoutes(router *httprouter.Router, h *wishlist.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/wishlist", middleware.WithSession(h.GetWishlist))
	router.GET("/api/wishlist/:productid", middleware.WithSession(h.CheckWishlist))
	router.POST("/api/wishlist", rl.Limit(middleware.WithSession(h.AddToWishlist)))
	router.POST("/api/wishlist/toggle", rl.Limit(middleware.WithSession(h.ToggleWishlist)))
	router.DELETE("/api/wishlist/:productid", rl.Limit(middleware.WithSession(h.RemoveFromWishlist)))
	router.DELETE("/api/wishlist", rl.Limit(middleware.WithSession(h.ClearWishlist)))
}

func AddCheckoutRoutes(router *httprouter.Router, h *checkout.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/checkout", rl.Limit(middleware.WithSession(h.PlaceOrder)))
	router.GET("/api/checkout/quote", middleware.WithSession(h.GetQuote))
	router.GET("/api/orders/last", middleware.WithSession(h.GetLastOrder))
	router.GET("/api/orders/receipt", middleware.WithSession(h.GetReceipt))
	router.GET("/api/orders/qr", middleware.WithSession(h.GetHandoffQR))
}

func AddUploadRoutes(router *httprouter.Router, h *uploads.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/uploads/payment-proof", rl.Limit(middleware.WithSession(h.UploadPaymentProof)))
}

func AddStaticRoutes(router *httprouter.Router, uploadDir string) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir(uploadDir))
	router.ServeFiles("/static/catalog/*filepath", http.Dir("static/catalog"))
}
