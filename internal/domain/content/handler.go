package content

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts public reads and admin writes.
func (h *Handler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/content", h.GetContent)
	public.GET("/settings", h.GetSettings)

	admin.PUT("/content", h.UpdateContent)
	admin.PUT("/settings", h.UpdateSettings)
}

func (h *Handler) GetContent(c echo.Context) error {
	doc, err := h.svc.GetContent(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) UpdateContent(c echo.Context) error {
	var doc WebsiteContent
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.UpdateContent(c.Request().Context(), doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) GetSettings(c echo.Context) error {
	st, err := h.svc.GetSettings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var st ClinicSettings
	if err := c.Bind(&st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.UpdateSettings(c.Request().Context(), st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}
