package insight

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/meddesk/meddesk/internal/platform/ai"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/ai-insights", h.ListInsights)
	api.GET("/ai-insights/:id", h.GetInsight)
	api.PATCH("/ai-insights/:id", h.UpdateInsight)

	api.POST("/ai/analyze-symptoms", h.AnalyzeSymptoms)
	api.POST("/ai/drug-interactions", h.CheckDrugInteractions)
	api.POST("/ai/generate-treatment-plan", h.GenerateTreatmentPlan)
}

// ListInsights returns the recent feed, or a patient's insights when
// patientId is given.
func (h *Handler) ListInsights(c echo.Context) error {
	ctx := c.Request().Context()

	if patientID := c.QueryParam("patientId"); patientID != "" {
		list, err := h.svc.ListByPatient(ctx, patientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, list)
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: "+raw)
		}
		limit = n
	}
	list, err := h.svc.ListRecent(ctx, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetInsight(c echo.Context) error {
	ins, err := h.svc.GetInsight(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if ins == nil {
		return echo.NewHTTPError(http.StatusNotFound, "insight not found")
	}
	return c.JSON(http.StatusOK, ins)
}

func (h *Handler) UpdateInsight(c echo.Context) error {
	var in UpdateInsight
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ins, err := h.svc.UpdateInsight(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if ins == nil {
		return echo.NewHTTPError(http.StatusNotFound, "insight not found")
	}
	return c.JSON(http.StatusOK, ins)
}

type symptomRequest struct {
	AnalysisRequest
	ai.SymptomInput
}

func (h *Handler) AnalyzeSymptoms(c echo.Context) error {
	var req symptomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.AnalyzeSymptoms(c.Request().Context(), req.AnalysisRequest, req.SymptomInput)
	if err != nil {
		return analysisError(err)
	}
	return c.JSON(http.StatusOK, result)
}

type interactionRequest struct {
	AnalysisRequest
	ai.InteractionInput
}

func (h *Handler) CheckDrugInteractions(c echo.Context) error {
	var req interactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.CheckDrugInteractions(c.Request().Context(), req.AnalysisRequest, req.InteractionInput)
	if err != nil {
		return analysisError(err)
	}
	return c.JSON(http.StatusOK, result)
}

type treatmentRequest struct {
	AnalysisRequest
	ai.TreatmentInput
}

func (h *Handler) GenerateTreatmentPlan(c echo.Context) error {
	var req treatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.GenerateTreatmentPlan(c.Request().Context(), req.AnalysisRequest, req.TreatmentInput)
	if err != nil {
		return analysisError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// analysisError distinguishes caller mistakes from upstream model failures.
func analysisError(err error) error {
	if errors.Is(err, ai.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusBadGateway, "analysis failed: "+err.Error())
}
