package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"omufusion/internal/analytics"
	"omufusion/internal/config"
	"omufusion/internal/database"
	"omufusion/internal/handlers"
	"omufusion/internal/middleware"
	"omufusion/internal/services"
	"omufusion/internal/upload"
)

func main() {
	config.MustLoad()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(config.AppEnv.DBName)
	log.Println("[DB] [INFO] MongoDB connected to:", db.Name())

	rdb, err := database.ConnectRedis(config.AppEnv.RedisURI)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Println("[DB] [WARN] user index warning:", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Println("[DB] [WARN] admin index warning:", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Println("[DB] [WARN] order index warning:", err)
	}
	if err := database.EnsureOwnedDocIndexes(db); err != nil {
		log.Println("[DB] [WARN] cart/wishlist index warning:", err)
	}
	if err := database.EnsureReviewIndexes(db); err != nil {
		log.Println("[DB] [WARN] review index warning:", err)
	}

	profile := services.NewUserProfileService(db)
	auth := services.NewAuthService(db, profile, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL)
	adminAuth := services.NewAdminAuthService(db, auth, rdb, config.AppEnv.AdminSessionTTL)
	products := services.NewProductService(db)
	reviews := services.NewReviewService(db)
	cart := services.NewCartService(db)
	wishlist := services.NewWishlistService(db)
	orders := services.NewOrderService(db, cart)
	site := services.NewSiteConfigService(db)
	reports := analytics.NewService(db)
	uploads := buildUploadChain()

	if config.AppEnv.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppEnv.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.AdminSessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Public storefront surface.
	api.GET("/products", handlers.GetProducts(products))
	api.GET("/products/featured", handlers.GetFeaturedProducts(products))
	api.GET("/products/:id", handlers.GetProduct(products))
	api.GET("/products/:id/reviews", handlers.GetProductReviews(reviews))
	api.GET("/config", handlers.GetSiteConfig(site))
	api.POST("/auth/register", handlers.Register(auth))
	api.POST("/auth/login", handlers.Login(auth))
	api.POST("/auth/logout", handlers.Logout())
	api.POST("/auth/password-reset", handlers.RequestPasswordReset(auth))
	api.POST("/auth/verify-email", handlers.RequestEmailVerification(auth))
	api.POST("/admin/login", handlers.AdminLogin(adminAuth))

	// Signed-in customer surface.
	user := api.Group("/")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.GET("/auth/me", handlers.GetMe(profile))
		user.GET("/me", handlers.GetMe(profile))

		// Session events carry user ids, so the relay needs a signed-in
		// viewer.
		user.GET("/ws/session", handlers.SessionEvents(adminAuth))
		user.PUT("/me", handlers.UpdateProfile(profile))
		user.PUT("/me/preferences", handlers.UpdatePreferences(profile))
		user.POST("/me/addresses", handlers.AddAddress(profile))
		user.PUT("/me/addresses/:addressId", handlers.UpdateAddress(profile))
		user.DELETE("/me/addresses/:addressId", handlers.RemoveAddress(profile))
		user.PUT("/me/addresses/:addressId/default", handlers.SetDefaultAddress(profile))

		user.GET("/cart", handlers.GetCart(cart))
		user.POST("/cart/items", handlers.AddToCart(cart, products))
		user.PUT("/cart/items/:productId", handlers.UpdateCartItem(cart))
		user.DELETE("/cart/items/:productId", handlers.RemoveCartItem(cart))
		user.DELETE("/cart", handlers.ClearCart(cart))

		user.GET("/wishlist", handlers.GetWishlist(wishlist))
		user.POST("/wishlist/items", handlers.AddToWishlist(wishlist, products))
		user.DELETE("/wishlist/items/:productId", handlers.RemoveFromWishlist(wishlist))
		user.DELETE("/wishlist", handlers.ClearWishlist(wishlist))

		user.POST("/orders", handlers.CreateOrder(orders, cart))
		user.GET("/orders", handlers.GetMyOrders(orders))
		user.GET("/orders/:id", handlers.GetMyOrder(orders))
		user.POST("/orders/:id/cancel", handlers.CancelMyOrder(orders))

		user.POST("/products/:id/reviews", handlers.AddProductReview(reviews, profile))
	}

	// Admin back-office surface.
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret, adminAuth))
	{
		admin.POST("/logout", handlers.AdminLogout(adminAuth))

		admin.GET("/products", handlers.AdminGetProducts(products))
		admin.POST("/products", handlers.AdminCreateProduct(products))
		admin.PUT("/products/:id", handlers.AdminUpdateProduct(products))
		admin.PUT("/products/:id/stock", handlers.AdminUpdateProductStock(products))
		admin.PUT("/products/:id/active", handlers.AdminSetProductActive(products))
		admin.DELETE("/products/:id", handlers.AdminDeleteProduct(products))
		admin.POST("/products/upload", handlers.UploadProductImage(uploads))

		admin.GET("/orders", handlers.AdminGetOrders(orders))
		admin.GET("/orders/:id", handlers.AdminGetOrder(orders))
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus(orders))

		admin.GET("/users", handlers.AdminGetUsers(profile))
		admin.PUT("/users/:id/active", handlers.AdminSuspendUser(profile))
		admin.PUT("/users/:id/role", handlers.AdminPromoteUser(profile))
		admin.DELETE("/users/:id", handlers.AdminDeleteUser(profile))

		admin.PUT("/config", handlers.AdminUpdateSiteConfig(site))

		admin.GET("/analytics/dashboard", handlers.AdminDashboardStats(reports))
		admin.GET("/analytics/sales", handlers.AdminSalesAnalytics(reports))
		admin.GET("/analytics/inventory", handlers.AdminInventoryAnalytics(reports))
		admin.GET("/analytics/customers", handlers.AdminCustomerAnalytics(reports))
		admin.POST("/analytics/cache/clear", handlers.AdminClearAnalyticsCache(reports))
	}

	log.Println("[HTTP] [INFO] listening on port", config.AppEnv.Port)
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}

// buildUploadChain assembles the image host fallback chain from whatever is
// configured. The local encoder goes last; with nothing configured it is the
// whole chain and uploads still succeed.
func buildUploadChain() *upload.Chain {
	var hops []upload.Uploader

	if config.AppEnv.CloudinaryName != "" {
		cld, err := upload.NewCloudinaryUploader(
			config.AppEnv.CloudinaryName,
			config.AppEnv.CloudinaryAPIKey,
			config.AppEnv.CloudinaryAPISecret,
			"products",
		)
		if err != nil {
			log.Println("[UPLOAD] [WARN] cloudinary disabled:", err)
		} else {
			hops = append(hops, cld)
		}
	}
	if config.AppEnv.ImageHostEndpoint != "" {
		hops = append(hops, upload.NewImageHostUploader(config.AppEnv.ImageHostEndpoint, config.AppEnv.ImageHostAPIKey))
	}
	hops = append(hops, upload.NewLocalUploader())

	return upload.NewChain(hops...)
}
