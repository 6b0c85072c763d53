package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cars      *api.CarHandler
	Customers *api.CustomerHandler
	Rents     *api.RentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/cars"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Cars.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Cars.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Cars.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Cars.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Cars.Delete},
			{Method: http.MethodGet, Path: "/:id/rents", Handler: h.Rents.ListForCar},
		})

		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Customers.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Customers.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Customers.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Customers.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Customers.Delete},
			{Method: http.MethodGet, Path: "/:id/rents", Handler: h.Rents.ListForCustomer},
		})

		addRoutes(apiGroup.Group("/rents"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Rents.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Rents.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Rents.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Rents.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Rents.Delete},
			{Method: http.MethodPost, Path: "/:id/return", Handler: h.Rents.ReturnCar},
		})
	}
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
