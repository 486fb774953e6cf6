package routes

import (
	"github.com/sierracataloguebusiness/sierra-catalogue/configs"
	"github.com/sierracataloguebusiness/sierra-catalogue/controllers"
	"github.com/sierracataloguebusiness/sierra-catalogue/middlewares"
	"github.com/sierracataloguebusiness/sierra-catalogue/repository"
	"github.com/sierracataloguebusiness/sierra-catalogue/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	vendorOrderRepo := repository.NewVendorOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	listingRepo := repository.NewListingRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, vendorOrderRepo, cartRepo)
	vendorOrderSvc := services.NewVendorOrderService(db, vendorOrderRepo, orderRepo)
	cartSvc := services.NewCartService(db, cartRepo, listingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	listingCtrl := controllers.NewListingController(db, listingRepo, cfg)
	categoryCtrl := controllers.NewCategoryController(db)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	vendorCtrl := controllers.NewVendorController(db, listingRepo, vendorOrderRepo, cfg)
	vendorOrderCtrl := controllers.NewVendorOrderController(vendorOrderSvc)
	appCtrl := controllers.NewVendorApplicationController(db)
	adminCtrl := controllers.NewAdminController(db)
	blogCtrl := controllers.NewBlogController(db, cfg)
	contactCtrl := controllers.NewContactController(db)
	savedCtrl := controllers.NewSavedListingController(db)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalogue
	r.GET("/listings", listingCtrl.List)
	r.GET("/listings/:id", listingCtrl.Detail)
	r.GET("/category", categoryCtrl.List)
	r.GET("/blogs", blogCtrl.List)
	r.GET("/blogs/:id", blogCtrl.Detail)
	r.POST("/contact", contactCtrl.Submit)

	// Listing management (vendor/admin)
	manage := r.Group("/listings", auth("vendor", "admin"))
	{
		manage.POST("", listingCtrl.Create)
		manage.PUT("/:id", listingCtrl.Update)
		manage.DELETE("/:id", listingCtrl.Delete)
	}

	// Cart (ต้องล็อกอิน)
	cart := r.Group("/cart", auth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (buyer)
	u := r.Group("/", auth())
	{
		u.POST("/orders", orderCtrl.Create)
		u.POST("/orders/checkout", orderCtrl.CheckoutFromCart)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/saved", savedCtrl.List)
		profile.POST("/saved/:listingId", savedCtrl.Save)
		profile.DELETE("/saved/:listingId", savedCtrl.Remove)
	}

	// ยื่นสมัครเป็น vendor (ต้องล็อกอิน)
	r.POST("/vendor-applications", auth(), appCtrl.Apply)

	// Vendor back-office (vendor/admin)
	vendor := r.Group("/vendor", auth("vendor", "admin"))
	{
		vendor.GET("/dashboard", vendorCtrl.Dashboard)
		vendor.GET("/listings", listingCtrl.ListForVendor)
		vendor.GET("/shop", vendorCtrl.Shop)
		vendor.POST("/shop", vendorCtrl.UpsertShop)

		vendor.GET("/orders", vendorOrderCtrl.List)
		vendor.GET("/orders/:id", vendorOrderCtrl.Detail)
		vendor.PUT("/orders/:id/items/:itemId", vendorOrderCtrl.UpdateItemStatus)
		vendor.PUT("/orders/:id/items", vendorOrderCtrl.BulkUpdateItemStatus)
	}

	// Admin (admin only)
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.PATCH("/users/:id/activate", adminCtrl.ActivateUser)
		admin.PATCH("/users/:id/deactivate", adminCtrl.DeactivateUser)
		admin.PATCH("/users/:id/role", adminCtrl.UpdateUserRole)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)

		admin.POST("/category", categoryCtrl.Create)
		admin.DELETE("/category/:id", categoryCtrl.Delete)

		admin.GET("/contact-messages", adminCtrl.ContactMessages)

		admin.POST("/blogs", blogCtrl.Create)
		admin.PUT("/blogs/:id", blogCtrl.Update)
		admin.DELETE("/blogs/:id", blogCtrl.Delete)

		// อนุมัติ/ปฏิเสธใบสมัครเป็น vendor
		admin.GET("/vendor-applications", appCtrl.List) // ?status=pending
		admin.PATCH("/vendor-applications/:id/approve", appCtrl.Approve)
		admin.PATCH("/vendor-applications/:id/reject", appCtrl.Reject)
	}
}
