package httpapi

import (
	"net/http"

	"haven-booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the public and admin routes
func NewRouter(
	lifecycle *usecase.BookingLifecycle,
	inbox *usecase.MessageInbox,
	adminAuth *usecase.AdminAuth,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	bookings := NewBookingHandler(lifecycle)
	messages := NewMessageHandler(inbox)
	auth := NewAuthHandler(adminAuth)

	v1 := r.Group("/v1")
	{
		v1.POST("/bookings", bookings.Submit)
		v1.POST("/bookings/quote", bookings.Quote)
		v1.POST("/messages", messages.Submit)
		v1.POST("/admin/login", auth.Login)

		admin := v1.Group("/admin", JWTAuth(adminAuth))
		{
			admin.GET("/bookings", bookings.List)
			admin.POST("/bookings/:id/confirm", bookings.Confirm)
			admin.POST("/bookings/:id/cancel", bookings.Cancel)
			admin.DELETE("/bookings/:id", bookings.Delete)

			admin.GET("/messages", messages.List)
			admin.POST("/messages/:id/read", messages.MarkRead)
			admin.DELETE("/messages/:id", messages.Delete)
		}
	}

	return r
}
