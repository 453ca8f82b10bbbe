package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/handler"
)

// Register wires routes and middleware. Route groups compose the two
// authorization stages independently: public routes carry neither, the
// engagement routes carry only token validation, and the admin routes carry
// both.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	feedHandler *handler.FeedHandler,
	engagementHandler *handler.EngagementHandler,
	postHandler *handler.PostHandler,
	mediaHandler *handler.MediaHandler,
	analyticsHandler *handler.AnalyticsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.GET("/posts", feedHandler.ListPosts)
	api.GET("/posts/:id/comments", feedHandler.ListComments)

	// Engagement routes require a valid token but not admin rights
	engaged := api.Group("", auth.Authenticate(cfg.JWTSecret))
	engaged.POST("/posts/:id/like", engagementHandler.ToggleLike)
	engaged.POST("/posts/:id/comments", engagementHandler.AddComment)

	admin := e.Group("/admin")
	admin.POST("/login", authHandler.AdminLogin)

	// Admin routes require a valid token carrying the admin flag
	protected := admin.Group("", auth.Authenticate(cfg.JWTSecret), auth.RequireAdmin)
	protected.POST("/upload", postHandler.Create)
	protected.POST("/upload-media", mediaHandler.Upload)
	protected.GET("/posts", postHandler.List)
	protected.PUT("/posts/:id", postHandler.Update)
	protected.DELETE("/posts/:id", postHandler.Delete)
	protected.GET("/analytics", analyticsHandler.Aggregate)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
