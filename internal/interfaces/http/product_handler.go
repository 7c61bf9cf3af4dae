package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Prendas-api/internal/application/dto"
	"github.com/jhoicas/Prendas-api/internal/application/inventory"
	"github.com/jhoicas/Prendas-api/internal/application/usecase"
	"github.com/jhoicas/Prendas-api/internal/domain"
)

// ProductHandler maneja el catálogo de prendas (protegido).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	createUC *inventory.CreateProductUseCase
	exportUC *usecase.ExportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, createUC *inventory.CreateProductUseCase, exportUC *usecase.ExportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, createUC: createUC, exportUC: exportUC}
}

// Create godoc
// @Summary      Registrar prenda
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos de la prenda"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.createUC.CreateProduct(c.UserContext(), inventory.CreateProductInput{
		Name:            in.Name,
		Size:            in.Size,
		Color:           in.Color,
		Stock:           in.Stock,
		BasePrice:       in.BasePrice,
		Owner:           in.Owner,
		CommissionValue: in.CommissionValue,
		CommissionKind:  in.CommissionKind,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la prenda inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(product))
}

// List godoc
// @Summary      Listar prendas (alcance según rol)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.UserContext(), GetRole(c), GetOwner(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products)), Total: len(products)}
	for _, p := range products {
		out.Items = append(out.Items, dto.FromProduct(p))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener prenda por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la prenda"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	product, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prenda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromProduct(product))
}

// Update godoc
// @Summary      Actualizar prenda (el stock no se edita por acá)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la prenda"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.Update(c.UserContext(), id, usecase.UpdateProductInput{
		Name:            in.Name,
		Size:            in.Size,
		Color:           in.Color,
		BasePrice:       in.BasePrice,
		Owner:           in.Owner,
		CommissionValue: in.CommissionValue,
		CommissionKind:  in.CommissionKind,
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prenda no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromProduct(product))
}

// Delete godoc
// @Summary      Eliminar prenda (el historial de movimientos queda)
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID de la prenda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prenda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Historial de movimientos de una prenda
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la prenda"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/products/{id}/movements [get]
func (h *ProductHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	movements, err := h.uc.History(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.MovementListResponse{Items: make([]dto.MovementResponse, 0, len(movements))}
	for _, m := range movements {
		out.Items = append(out.Items, dto.FromMovement(m))
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar inventario en xlsx (alcance según rol)
// @Tags         products
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/products/export [get]
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	result, err := h.exportUC.Export(c.UserContext(), GetRole(c), GetOwner(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Content)
}
