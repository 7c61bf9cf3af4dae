package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Prendas-api/internal/application/dto"
	"github.com/jhoicas/Prendas-api/internal/application/usecase"
)

// AIHandler maneja el resumen ejecutivo generado por el LLM (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen ejecutivo del inventario
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AISummaryResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/ai/summary [get]
func (h *AIHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext(), GetRole(c), GetOwner(c))
	if err != nil {
		// Timeout o API caída: el panel sigue sin el resumen.
		if strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "deadline") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_TIMEOUT", Message: "el servicio de resúmenes no respondió a tiempo"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(dto.AISummaryResponse{Summary: summary})
}
