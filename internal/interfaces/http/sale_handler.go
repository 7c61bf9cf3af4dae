package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/application/dto"
	"github.com/jhoicas/Prendas-api/internal/application/sales"
	"github.com/jhoicas/Prendas-api/internal/domain"
)

// SaleHandler maneja el registro de ventas y los datos de envío (protegido).
type SaleHandler struct {
	uc *sales.UseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *sales.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venta de carrito (promoción opcional)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "Carrito y datos de envío"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	lines := make([]sales.SaleLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, sales.SaleLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	result, err := h.uc.RegisterSale(c.UserContext(), sales.SaleInput{
		Lines:         lines,
		Location:      in.Location,
		PromotionID:   in.PromotionID,
		ClientName:    in.ClientName,
		ClientPhone:   in.ClientPhone,
		ClientDNI:     in.ClientDNI,
		District:      in.District,
		Address:       in.Address,
		Agency:        in.Agency,
		Destination:   in.Destination,
		PaymentNote:   in.PaymentNote,
		PaymentStatus: in.PaymentStatus,
		Comment:       in.Comment,
		Seller:        GetUserName(c),
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la venta inválidos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prenda o promoción no encontrada"})
		case domain.ErrPromoNotEligible:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PROMO_NOT_ELIGIBLE", Message: "el carrito no cumple la promoción elegida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.SaleResponse{
		Subtotal:     result.Subtotal,
		DeliveryFee:  result.DeliveryFee,
		Total:        result.Total,
		OrderMessage: result.OrderMessage,
	}
	for _, m := range result.Movements {
		out.Movements = append(out.Movements, dto.FromMovement(m))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// OrderLink godoc
// @Summary      Generar enlace de WhatsApp para un pedido
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderLinkRequest  true  "Número y mensaje"
// @Success      200   {object}  dto.OrderLinkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/order-link [post]
func (h *SaleHandler) OrderLink(c *fiber.Ctx) error {
	var in dto.OrderLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	link, err := h.uc.OrderLink(in.Number, in.Message)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número y mensaje son requeridos"})
	}
	return c.JSON(dto.OrderLinkResponse{URL: link})
}

// DeliveryOptions godoc
// @Summary      Tabla de distritos de Lima y agencias de provincia
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeliveryOptionsResponse
// @Router       /api/delivery/options [get]
func (h *SaleHandler) DeliveryOptions(c *fiber.Ctx) error {
	districts, agencies := h.uc.DeliveryOptions()
	out := dto.DeliveryOptionsResponse{
		Districts: make([]dto.DistrictResponse, 0, len(districts)),
		Agencies:  agencies,
	}
	for _, d := range districts {
		out.Districts = append(out.Districts, dto.DistrictResponse{
			Name: d.Name,
			Fee:  decimal.NewFromInt(d.Fee),
			Zone: d.Zone,
		})
	}
	return c.JSON(out)
}
