package routes

import (
	"garments/auth"
	"garments/cart"
	"garments/catalog"
	"garments/middleware"
	"garments/orders"
	"garments/profile"
	"garments/ratelim"
	"garments/stylist"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *catalog.Handler) {
	router.GET("/api/products", rl.Limit(h.GetProducts))
	router.GET("/api/products/:productid", rl.Limit(h.GetProductByID))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *cart.Handler) {
	router.GET("/api/cart", middleware.Authenticate(h.GetCart))
	router.POST("/api/cart", middleware.Authenticate(h.AddItem))
	router.DELETE("/api/cart", middleware.Authenticate(h.RemoveItem))
	router.PATCH("/api/cart", middleware.Authenticate(h.AdjustQuantity))
	router.POST("/api/cart/clear", middleware.Authenticate(h.ClearCart))
	router.GET("/api/cart/resolved", middleware.Authenticate(h.GetResolvedDiscount))

	router.PUT("/api/wishlist/:productid", middleware.Authenticate(h.ToggleWishlist))
	router.GET("/api/wishlist", middleware.Authenticate(h.GetWishlist))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *orders.Handler) {
	router.POST("/api/orders", middleware.Authenticate(h.PlaceOrder))
	router.POST("/api/orders/buy-now", middleware.Authenticate(h.BuyNow))
	router.GET("/api/orders", middleware.Authenticate(h.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(h.GetOrder))
	router.POST("/api/orders/:orderid/cancel", middleware.Authenticate(h.CancelOrder))
	router.POST("/api/orders/:orderid/advance", middleware.Authenticate(h.AdvanceOrder))
	router.POST("/api/orders/:orderid/delivered", middleware.Authenticate(h.MarkOrderDelivered))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(h.PrintInvoice))

	router.GET("/ws/orders/:orderid", orders.TrackOrderWS)
}

func AddProfileRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditProfile))
	router.PUT("/api/profile/avatar", middleware.Authenticate(profile.EditAvatar))
	router.POST("/api/profile/addresses", middleware.Authenticate(profile.AddAddress))
	router.DELETE("/api/profile/addresses/:index", middleware.Authenticate(profile.RemoveAddress))
}

func AddStylistRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/stylist/advice", rl.Limit(middleware.Authenticate(stylist.Advice)))
}
