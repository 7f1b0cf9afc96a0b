package handlers

import (
	"io"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/worklog-api/internal/constants"
	"github.com/yukikurage/worklog-api/internal/middleware"
	"github.com/yukikurage/worklog-api/internal/services"
)

// Services bundles everything the handlers depend on. Digest may be nil.
type Services struct {
	Auth       *services.AuthService
	Activity   *services.ActivityService
	Feedback   *services.FeedbackService
	Statistics *services.StatisticsService
	Digest     *services.DigestService
}

// RouterOptions configures the cross-cutting middleware.
type RouterOptions struct {
	SessionStore sessions.Store
	// RateLimiter guards the public POST endpoints when set.
	RateLimiter *middleware.RateLimiter
	// AccessLog receives one JSON line per request when set.
	AccessLog io.Writer
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	if opts.AccessLog != nil {
		r.Use(middleware.AccessLog(opts.AccessLog))
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, opts.SessionStore))

	limit := func(c *gin.Context) { c.Next() }
	if opts.RateLimiter != nil {
		limit = opts.RateLimiter.Middleware()
	}

	authHandler := NewAuthHandler(svc.Auth)
	eventHandler := NewEventHandler(svc.Activity)
	feedbackHandler := NewFeedbackHandler(svc.Feedback)
	statisticsHandler := NewStatisticsHandler(svc.Statistics, svc.Digest)

	r.GET("/health", Health)

	// Public pages and forms
	r.GET("/", feedbackHandler.Index)
	r.POST("/submit_feedback", limit, feedbackHandler.SubmitFeedback)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", limit, authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", limit, authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/dashboard", middleware.RequirePageAuth(svc.Auth), authHandler.Dashboard)

	// Calendar
	r.GET("/events", middleware.OptionalAuth(svc.Auth), eventHandler.ListEvents)

	protected := r.Group("")
	protected.Use(middleware.RequireAuth(svc.Auth))
	{
		protected.GET("/me", authHandler.GetCurrentUser)
		protected.GET("/event/:date", eventHandler.GetEvent)
		protected.POST("/event", eventHandler.SaveEvent)
		protected.POST("/event/delete/:id", eventHandler.DeleteEvent)
		protected.POST("/statistics", statisticsHandler.Statistics)
		protected.POST("/statistics/digest", statisticsHandler.Digest)
	}

	return r
}
