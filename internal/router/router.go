package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)

	BookEvent(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)

	ListUsers(c *ginext.Context)
	ListAllEvents(c *ginext.Context)
}

// Guards задаёт middleware защищённых маршрутов.
type Guards struct {
	Authenticate ginext.HandlerFunc
	RequireAdmin ginext.HandlerFunc
	AuthLimit    ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		if g.AuthLimit != nil {
			authGroup.POST("/register", g.AuthLimit, h.Register)
			authGroup.POST("/login", g.AuthLimit, h.Login)
		} else {
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
		}
		authGroup.GET("/me", g.Authenticate, h.Me)
	}

	// Events
	api.GET("/events", h.ListEvents)
	api.GET("/events/:id", h.GetEvent)

	protected := api.Group("", g.Authenticate)
	{
		protected.POST("/events", h.CreateEvent)
		protected.PUT("/events/:id", h.UpdateEvent)
		protected.DELETE("/events/:id", h.DeleteEvent)

		// Bookings
		protected.POST("/events/:id/bookings", h.BookEvent)
		protected.POST("/bookings/:id/confirm", h.ConfirmBooking)
		protected.GET("/bookings/me", h.ListMyBookings)
	}

	admin := api.Group("/admin", g.Authenticate, g.RequireAdmin)
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/events", h.ListAllEvents)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
