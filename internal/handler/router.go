package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental/internal/handler/api"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewCarsRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h *api.CarHandler) {
	v1 := setup(engine, cfg, logger)
	addRoutes(v1.Group("/cars"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodGet, Path: "/:carUid", Handler: h.Get},
		{Method: http.MethodPut, Path: "/:carUid/reserve", Handler: h.Reserve},
		{Method: http.MethodPut, Path: "/:carUid/release", Handler: h.Release},
	})
}

func NewPaymentsRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h *api.PaymentHandler) {
	v1 := setup(engine, cfg, logger)
	addRoutes(v1.Group("/payments"), []route{
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodGet, Path: "/:paymentUid", Handler: h.Get},
		{Method: http.MethodPut, Path: "/:paymentUid/cancel", Handler: h.Cancel},
	})
}

func NewRentalsRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h *api.RentalHandler) {
	v1 := setup(engine, cfg, logger)
	requireUser := []gin.HandlerFunc{middleware.RequireUser()}

	rentals := v1.Group("/rentals")
	rentals.Use(middleware.IdentifyUser())
	addRoutes(rentals, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodGet, Path: "", Handler: h.List, Mw: requireUser},
		{Method: http.MethodGet, Path: "/:rentalUid", Handler: h.Get, Mw: requireUser},
		{Method: http.MethodPut, Path: "/:rentalUid/cancel", Handler: h.Cancel, Mw: requireUser},
		{Method: http.MethodPut, Path: "/:rentalUid/finish", Handler: h.Finish},
	})
}

func NewGatewayRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h *api.GatewayHandler) {
	v1 := setup(engine, cfg, logger)

	addRoutes(v1, []route{
		{Method: http.MethodGet, Path: "/cars", Handler: h.ListCars},
	})

	rental := v1.Group("/rental")
	rental.Use(middleware.RequireUser())
	addRoutes(rental, []route{
		{Method: http.MethodGet, Path: "", Handler: h.ListRentals},
		{Method: http.MethodPost, Path: "", Handler: h.Book},
		{Method: http.MethodGet, Path: "/:rentalUid", Handler: h.GetRental},
		{Method: http.MethodPost, Path: "/:rentalUid/finish", Handler: h.Finish},
		{Method: http.MethodDelete, Path: "/:rentalUid", Handler: h.Cancel},
	})
}

// setup installs the shared middleware and service routes and returns the /api/v1 group.
func setup(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) *gin.RouterGroup {
	httperr.UseJSONFieldNames()

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())

	engine.GET("/manage/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return engine.Group("/api/v1")
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /manage/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
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
