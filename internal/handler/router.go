package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"little-lemon/internal/handler/api"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/handler/web"
	"little-lemon/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	sessions *middleware.SessionMiddleware,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	pages *web.Pages,
) {
	slogger := logger.GetSlogLogger()
	setupMiddleware(engine, cfg, logger, slogger)
	setupRoutes(engine, sessions, bookingHandler, availabilityHandler, pages)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, slogger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(
	engine *gin.Engine,
	sessions *middleware.SessionMiddleware,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	pages *web.Pages,
) {
	engine.HandleMethodNotAllowed = true
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// availability is stateless and needs no session
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.Get},
		})

		withSession := apiGroup.Group("")
		withSession.Use(sessions.Attach())
		addRoutes(withSession, []route{
			{Method: http.MethodGet, Path: "/booking", Handler: bookingHandler.Get},
			{Method: http.MethodPut, Path: "/booking/date", Handler: bookingHandler.ChangeDate},
			{Method: http.MethodDelete, Path: "/booking", Handler: bookingHandler.Reset},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Submit},
		})
	}

	site := engine.Group("")
	site.Use(sessions.Attach())
	{
		pageRoutes := make([]route, 0, len(pages.Paths())+3)
		for _, path := range pages.Paths() {
			pageRoutes = append(pageRoutes, route{Method: http.MethodGet, Path: path, Handler: pages.Serve})
		}
		pageRoutes = append(pageRoutes,
			route{Method: http.MethodPost, Path: "/booking", Handler: pages.Submit},
			route{Method: http.MethodPost, Path: "/booking/date", Handler: pages.ChangeDate},
			route{Method: http.MethodPost, Path: "/booking/new", Handler: pages.NewBooking},
		)
		addRoutes(site, pageRoutes)
	}

	// unknown paths still render inside the site chrome
	engine.NoRoute(sessions.Attach(), pages.Serve)
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
