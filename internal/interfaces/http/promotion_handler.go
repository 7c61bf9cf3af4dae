package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Prendas-api/internal/application/dto"
	"github.com/jhoicas/Prendas-api/internal/application/usecase"
	"github.com/jhoicas/Prendas-api/internal/domain"
)

// PromotionHandler maneja promociones y sugerencias de carrito (protegido).
type PromotionHandler struct {
	uc *usecase.PromotionUseCase
}

// NewPromotionHandler construye el handler.
func NewPromotionHandler(uc *usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear promoción
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePromotionRequest  true  "Promoción"
// @Success      201   {object}  dto.PromotionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/promotions [post]
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	promo, err := h.uc.Create(c.UserContext(), usecase.CreatePromotionInput{
		Name:             in.Name,
		Description:      in.Description,
		Kind:             in.Kind,
		RequiredQty:      in.RequiredQty,
		PromoPrice:       in.PromoPrice,
		ApplicableModels: in.ApplicableModels,
		OwnerID:          in.OwnerID,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la promoción inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromPromotion(promo))
}

// List godoc
// @Summary      Listar promociones (alcance según rol)
// @Tags         promotions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PromotionListResponse
// @Router       /api/promotions [get]
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	promotions, err := h.uc.List(c.UserContext(), GetRole(c), GetOwner(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.PromotionListResponse{Items: make([]dto.PromotionResponse, 0, len(promotions))}
	for _, p := range promotions {
		out.Items = append(out.Items, dto.FromPromotion(p))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar promoción
// @Tags         promotions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la promoción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Suggest godoc
// @Summary      Promociones que el carrito en curso ya cumple
// @Tags         promotions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuggestPromotionsRequest  true  "Carrito"
// @Success      200   {object}  dto.PromotionListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/promotions/suggest [post]
func (h *PromotionHandler) Suggest(c *fiber.Ctx) error {
	var in dto.SuggestPromotionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines := make([]usecase.SuggestLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, usecase.SuggestLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	promotions, err := h.uc.Suggest(c.UserContext(), lines)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "carrito inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prenda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.PromotionListResponse{Items: make([]dto.PromotionResponse, 0, len(promotions))}
	for _, p := range promotions {
		out.Items = append(out.Items, dto.FromPromotion(p))
	}
	return c.JSON(out)
}
