package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/metrics"
	"github.com/stpnv0/rahi/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	IssueToken(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	ListCategories(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	BookingHistory(c *ginext.Context)
	AcceptBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	StartBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)

	CreateWorkerProfile(c *ginext.Context)
	GetWorkerProfile(c *ginext.Context)
	SetWorkerStatus(c *ginext.Context)

	WalletBalance(c *ginext.Context)
	WalletTransactions(c *ginext.Context)
	WalletSummary(c *ginext.Context)
	Withdraw(c *ginext.Context)
	Reconcile(c *ginext.Context)
	GrantBonus(c *ginext.Context)

	ListNotifications(c *ginext.Context)
	MarkNotificationRead(c *ginext.Context)
	MarkAllNotificationsRead(c *ginext.Context)
	ClearNotifications(c *ginext.Context)
	RebuildNotifications(c *ginext.Context)

	Stream(c *ginext.Context)
}

// Middlewares are the per-group layers. Global ones go to Common.
type Middlewares struct {
	Common      []ginext.HandlerFunc
	Auth        ginext.HandlerFunc
	Idempotency ginext.HandlerFunc
	Timeout     ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, mw Middlewares) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw.Common...)

	workers := middleware.RequireRole(domain.RoleWorker, domain.RoleThekedar)
	customers := middleware.RequireRole(domain.RoleCustomer)
	admins := middleware.RequireRole(domain.RoleAdmin)

	public := router.Group("/api", mw.Timeout)
	{
		public.POST("/users", h.CreateUser)
		public.POST("/auth/token", h.IssueToken)
		public.GET("/categories", h.ListCategories)
	}

	api := router.Group("/api", mw.Timeout, mw.Auth, mw.Idempotency)
	{
		// Users
		api.GET("/users", admins, h.ListUsers)
		api.GET("/users/:id", h.GetUser)

		// Bookings
		api.POST("/bookings", customers, h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.GET("/bookings/:id/history", h.BookingHistory)
		api.POST("/bookings/:id/accept", workers, h.AcceptBooking)
		api.POST("/bookings/:id/reject", workers, h.RejectBooking)
		api.POST("/bookings/:id/start", h.StartBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Worker profiles
		api.POST("/worker-profiles", workers, h.CreateWorkerProfile)
		api.GET("/worker-profiles/:userId", h.GetWorkerProfile)
		api.PATCH("/worker-profiles/:userId/status", h.SetWorkerStatus)

		// Wallet
		api.GET("/wallet/balance", workers, h.WalletBalance)
		api.GET("/wallet/transactions", workers, h.WalletTransactions)
		api.GET("/wallet/summary", workers, h.WalletSummary)
		api.POST("/wallet/withdraw", workers, h.Withdraw)
		api.POST("/wallet/reconcile", workers, h.Reconcile)
		api.POST("/wallet/bonus", admins, h.GrantBonus)

		// Notifications
		api.GET("/notifications", h.ListNotifications)
		api.POST("/notifications/:id/read", h.MarkNotificationRead)
		api.POST("/notifications/read-all", h.MarkAllNotificationsRead)
		api.DELETE("/notifications", h.ClearNotifications)
		api.POST("/notifications/rebuild", h.RebuildNotifications)
	}

	// без таймаута: соединение живёт долго
	router.GET("/ws", mw.Auth, h.Stream)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
