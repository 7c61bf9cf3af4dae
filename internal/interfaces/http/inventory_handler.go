package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Prendas-api/internal/application/dto"
	"github.com/jhoicas/Prendas-api/internal/application/inventory"
	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// InventoryHandler maneja movimientos de stock y su historial (protegido).
type InventoryHandler struct {
	registerUC *inventory.RegisterMovementUseCase
	movRepo    repository.MovementRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(registerUC *inventory.RegisterMovementUseCase, movRepo repository.MovementRepository) *InventoryHandler {
	return &InventoryHandler{registerUC: registerUC, movRepo: movRepo}
}

// RegisterMovement godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Las ventas van por /api/sales: acá solo Entrada y Salida.
	if in.Type == entity.MovementVenta {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las ventas se registran en /api/sales"})
	}
	mov, err := h.registerUC.RegisterMovement(c.UserContext(), inventory.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Seller:    GetUserName(c),
		Comment:   in.Comment,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prenda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovement(mov))
}

// ListMovements godoc
// @Summary      Historial de movimientos (los vendedores ven solo los suyos)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	var (
		movements []*entity.Movement
		err       error
	)
	if GetRole(c) == entity.RoleSeller {
		movements, err = h.movRepo.ListBySeller(GetUserName(c), page.Limit, page.Offset)
	} else {
		movements, err = h.movRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.MovementListResponse{Items: make([]dto.MovementResponse, 0, len(movements))}
	for _, m := range movements {
		out.Items = append(out.Items, dto.FromMovement(m))
	}
	return c.JSON(out)
}
