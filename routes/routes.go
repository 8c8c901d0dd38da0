package routes

import (
	"net/http"

	"kirana/auth"
	"kirana/imgproxy"
	"kirana/live"
	"kirana/middleware"
	"kirana/orders"
	"kirana/products"
	"kirana/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:id", products.GetProduct)
	router.POST("/api/products", middleware.Authenticate(middleware.RequireAdmin(products.CreateProduct)))
	router.PUT("/api/products/:id", middleware.Authenticate(middleware.RequireAdmin(products.UpdateProduct)))
	router.DELETE("/api/products/:id", middleware.Authenticate(middleware.RequireAdmin(products.DeleteProduct)))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(middleware.Authenticate(orders.PlaceOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.GetMyOrders))
	router.PUT("/api/orders/:id/cancel", middleware.Authenticate(orders.CancelOrder))
	router.GET("/api/orders/:id/receipt", middleware.Authenticate(orders.DownloadReceipt))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/orders", middleware.Authenticate(middleware.RequireAdmin(orders.GetAllOrders)))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/admin/orders", live.OrderFeed(hub))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/proxy-image", imgproxy.ProxyImage)
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}
