package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public catalog reads and the admin writes.
func (h *Handler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/services", h.ListTreatments)
	public.GET("/services/:id", h.GetTreatment)
	public.GET("/gallery", h.ListGallery)
	public.GET("/testimonials", h.ListTestimonials)

	admin.POST("/services", h.SaveTreatment)
	admin.PUT("/services/:id", h.UpdateTreatment)
	admin.DELETE("/services/:id", h.DeleteTreatment)
	admin.POST("/gallery", h.AddGalleryItem)
	admin.DELETE("/gallery/:id", h.DeleteGalleryItem)
	admin.POST("/testimonials", h.SaveTestimonial)
	admin.PUT("/testimonials/:id", h.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", h.DeleteTestimonial)
}

func (h *Handler) ListTreatments(c echo.Context) error {
	items, err := h.svc.ListTreatments(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []Treatment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetTreatment(c echo.Context) error {
	t, err := h.svc.GetTreatment(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "service not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) SaveTreatment(c echo.Context) error {
	var t Treatment
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.SaveTreatment(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) UpdateTreatment(c echo.Context) error {
	var t Treatment
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	t.ID = c.Param("id")
	if err := h.svc.SaveTreatment(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTreatment(c echo.Context) error {
	if err := h.svc.DeleteTreatment(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "service not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListGallery(c echo.Context) error {
	items, err := h.svc.ListGallery(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []GalleryItem{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddGalleryItem(c echo.Context) error {
	var g GalleryItem
	if err := c.Bind(&g); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.AddGalleryItem(c.Request().Context(), &g); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *Handler) DeleteGalleryItem(c echo.Context) error {
	if err := h.svc.DeleteGalleryItem(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "gallery item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListTestimonials(c echo.Context) error {
	items, err := h.svc.ListTestimonials(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []Testimonial{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SaveTestimonial(c echo.Context) error {
	var t Testimonial
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.SaveTestimonial(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) UpdateTestimonial(c echo.Context) error {
	var t Testimonial
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	t.ID = c.Param("id")
	if err := h.svc.SaveTestimonial(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTestimonial(c echo.Context) error {
	if err := h.svc.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "testimonial not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
