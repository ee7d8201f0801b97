package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"volleyhub/internal/ports/input"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Events         input.EventUseCase
	Participations input.ParticipationUseCase
	Feedback       input.FeedbackUseCase
}

type Options struct {
	ServiceName string
	CORSOrigins []string
	Production  bool
}

// SetupRoutes configures all routes under /api/v1.
func SetupRoutes(svc Services, verifier TokenVerifier, tr translator, opts Options) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if allowsAnyOrigin(opts.CORSOrigins) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = opts.CORSOrigins
		corsConfig.AllowCredentials = true
	}

	r := gin.New()
	r.Use(cors.New(corsConfig))

	r.Use(RequestID())
	r.Use(StructuredLogger())
	r.Use(Localize(tr))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": opts.ServiceName,
			})
		})
	}

	protected := v1.Group("/")
	protected.Use(Auth(verifier))

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("", CreateEvent(svc.Events))
		eventRoutes.GET("/upcoming", ListUpcoming(svc.Events))
		eventRoutes.GET("/:id", GetEvent(svc.Events))
		eventRoutes.POST("/:id/applications", ApplyToEvent(svc.Events))
		eventRoutes.POST("/:id/applications/:userId/approve", Approve(svc.Events))
		eventRoutes.POST("/:id/applications/:userId/decline", Decline(svc.Events))
		eventRoutes.PUT("/:id/feedback/:userId", SubmitFeedback(svc.Feedback))
		eventRoutes.GET("/:id/feedback/:userId", GetFeedback(svc.Feedback))
	}

	meRoutes := protected.Group("/me")
	{
		meRoutes.GET("/events/closed", ListOwnedClosed(svc.Events))
		meRoutes.GET("/participations", ListParticipations(svc.Participations))
	}

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id/feedback", ListUserFeedback(svc.Feedback))
		userRoutes.GET("/:id/reputation", Reputation(svc.Feedback))
	}

	wsRoutes := protected.Group("/ws")
	{
		wsRoutes.GET("/events/upcoming", WatchUpcoming(svc.Events))
		wsRoutes.GET("/participations", WatchParticipations(svc.Participations))
	}

	return r
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}
