package api

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/roster"
)

type Handler struct {
	catalog  *catalog.Catalog
	sessions *roster.Sessions
	logger   *zap.SugaredLogger
}

type Params struct {
	fx.In

	Catalog  *catalog.Catalog
	Sessions *roster.Sessions
	Logger   *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		catalog:  p.Catalog,
		sessions: p.Sessions,
		logger:   p.Logger,
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	v1 := e.Group("/v1")
	v1.GET("/catalog", h.GetCatalog)

	v1.POST("/sessions", h.CreateSession)
	sessions := v1.Group("/sessions/:sessionId")
	sessions.GET("", h.GetSession)
	sessions.DELETE("", h.DeleteSession)
	sessions.GET("/patients", h.ListPatients)
	sessions.POST("/patients", h.AdmitPatient)
	sessions.GET("/summary", h.GetSummary)
	sessions.GET("/report", h.GetReport)
	sessions.GET("/tags", h.ListTagNames)

	sessions.PUT("/filter/scope", h.SetScope)
	sessions.PUT("/filter/search", h.SetSearchText)
	sessions.POST("/filter/band", h.SelectBand)
	sessions.DELETE("/filter/band", h.ClearBand)

	sessions.POST("/patients/:patientId/status/toggle", h.ToggleStatus)
	sessions.POST("/patients/:patientId/tags", h.AddTag)
	sessions.DELETE("/patients/:patientId/tags/:name", h.RemoveTag)
	sessions.PUT("/patients/:patientId/assignment", h.Assign)
}

func (h *Handler) session(ec echo.Context) (*roster.Session, error) {
	return h.sessions.Get(ec.Param("sessionId"))
}
