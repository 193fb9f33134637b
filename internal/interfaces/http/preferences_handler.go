package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lunchcontrol-api/internal/application/dto"
	"github.com/jhoicas/lunchcontrol-api/internal/application/usecase"
)

// PreferencesHandler tema claro/oscuro. No requiere sesión.
type PreferencesHandler struct {
	uc *usecase.PreferencesUseCase
}

// NewPreferencesHandler construye el handler.
func NewPreferencesHandler(uc *usecase.PreferencesUseCase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

// Theme godoc
// @Summary      Tema vigente
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/preferences/theme [get]
func (h *PreferencesHandler) Theme(c *fiber.Ctx) error {
	out, err := h.uc.Theme(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetTheme godoc
// @Summary      Cambiar tema
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThemeRequest  true  "light | dark"
// @Success      200   {object}  dto.ThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/preferences/theme [put]
func (h *PreferencesHandler) SetTheme(c *fiber.Ctx) error {
	var in dto.ThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetTheme(c.Context(), in.Theme)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar tema
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/preferences/theme/toggle [post]
func (h *PreferencesHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.Toggle(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
