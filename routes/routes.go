package routes

import (
	"github.com/tuananhtran-web/orderbanhmi/configs"
	"github.com/tuananhtran-web/orderbanhmi/controllers"
	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/middlewares"
	"github.com/tuananhtran-web/orderbanhmi/repository"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.Hub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	checkinRepo := repository.NewCheckInRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services, all publishing into the websocket hub
	notifSvc := services.NewNotificationService(notifRepo)
	notifSvc.Events = hub

	uploadSvc := services.NewUploadService(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.BootstrapUsername, cfg.BootstrapPassword)
	authSvc.Events = hub

	menuSvc := services.NewMenuService(menuRepo)
	menuSvc.Events = hub

	cartSvc := services.NewCartService(db, cartRepo, menuRepo)

	stockSvc := services.NewStockService(menuRepo)

	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, stockSvc, notifSvc)
	orderSvc.Events = hub

	shiftSvc := services.NewShiftService(shiftRepo, userRepo, notifSvc)
	shiftSvc.Events = hub

	attendanceSvc := services.NewAttendanceService(checkinRepo, shiftRepo, userRepo, notifSvc, uploadSvc)
	attendanceSvc.Events = hub

	staffSvc := services.NewStaffService(userRepo, notifSvc)
	staffSvc.Events = hub

	reportSvc := services.NewReportService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, uploadSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, authSvc)
	attendanceCtrl := controllers.NewAttendanceController(attendanceSvc, shiftSvc, authSvc)
	shiftCtrl := controllers.NewShiftController(shiftSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	staffCtrl := controllers.NewStaffController(staffSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/register", authCtrl.Register)
	}

	// Any signed-in user
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/me", authCtrl.Me)
		auth.PATCH("/profile", authCtrl.UpdateProfile)
		auth.POST("/profile/avatar", authCtrl.UploadAvatar)

		auth.GET("/menu", menuCtrl.List)

		auth.GET("/cart", cartCtrl.Get)
		auth.POST("/cart/items", cartCtrl.Add)
		auth.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		auth.DELETE("/cart/items/:id", cartCtrl.Remove)
		auth.DELETE("/cart", cartCtrl.Clear)

		auth.POST("/orders/checkout", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.Mine)

		auth.POST("/attendance/check", attendanceCtrl.Check)
		auth.POST("/attendance/geo-advice", attendanceCtrl.GeoAdvice)
		auth.GET("/attendance/status", attendanceCtrl.TodayStatus)
		auth.GET("/attendance/history", attendanceCtrl.History)

		auth.GET("/shifts", shiftCtrl.Mine)

		auth.GET("/notifications", notifCtrl.List)
		auth.PATCH("/notifications/:id/read", notifCtrl.MarkRead)
		auth.POST("/notifications/read-all", notifCtrl.MarkAllRead)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, string(entity.RoleAdmin)))
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.PUT("/menu/:id", menuCtrl.Update)
		admin.PATCH("/menu/:id/stock", menuCtrl.SetStock)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/orders", orderCtrl.List)
		admin.POST("/orders/delete", orderCtrl.DeleteMany)
		admin.GET("/orders/deleted-logs", orderCtrl.DeletedLogs)
		admin.POST("/orders/deleted-logs/purge", orderCtrl.PurgeLogs)

		admin.GET("/attendance", attendanceCtrl.ListAll)

		admin.POST("/shifts", shiftCtrl.Create)
		admin.GET("/shifts", shiftCtrl.ListAll)

		admin.GET("/reports/summary", reportCtrl.Summary)
		admin.GET("/reports/ranking", reportCtrl.Ranking)
		admin.GET("/reports/daily", reportCtrl.Daily)

		admin.GET("/staff", staffCtrl.List)
		admin.POST("/staff", staffCtrl.Add)
		admin.POST("/staff/:id/approve", staffCtrl.Approve)
		admin.POST("/staff/:id/lock", staffCtrl.Lock)
		admin.POST("/staff/:id/unlock", staffCtrl.Unlock)
		admin.DELETE("/staff/:id", staffCtrl.Delete)
	}

	// Live subscriptions
	r.GET("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
