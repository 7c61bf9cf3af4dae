package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Prendas-api/internal/application/commissions"
	"github.com/jhoicas/Prendas-api/internal/application/dto"
	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// CommissionHandler maneja deuda y pagos de comisiones (protegido).
type CommissionHandler struct {
	uc *commissions.UseCase
}

// NewCommissionHandler construye el handler.
func NewCommissionHandler(uc *commissions.UseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// Debts godoc
// @Summary      Deuda de comisiones pendiente por vendedor
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DebtListResponse
// @Router       /api/commissions/debts [get]
func (h *CommissionHandler) Debts(c *fiber.Ctx) error {
	debts, err := h.uc.Debts(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.DebtListResponse{Items: make([]dto.SellerDebtResponse, 0, len(debts))}
	for _, d := range debts {
		out.Items = append(out.Items, dto.SellerDebtResponse{Seller: d.Seller, Amount: d.Amount})
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Liquidar la deuda pendiente de un vendedor
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayCommissionsRequest  true  "Vendedor y monto"
// @Success      201   {object}  dto.CommissionPaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/commissions/pay [post]
func (h *CommissionHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayCommissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	payment, err := h.uc.Pay(c.UserContext(), in.Seller, in.Amount)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el monto no coincide con la deuda pendiente"})
		}
		if err == domain.ErrNoPendingDebt {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_PENDING_DEBT", Message: "el vendedor no tiene comisiones pendientes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCommissionPayment(payment))
}

// Payments godoc
// @Summary      Historial de pagos de comisiones (los vendedores ven los suyos)
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CommissionPaymentListResponse
// @Router       /api/commissions/payments [get]
func (h *CommissionHandler) Payments(c *fiber.Ctx) error {
	seller := ""
	if GetRole(c) == entity.RoleSeller {
		seller = GetUserName(c)
	}
	payments, err := h.uc.Payments(c.UserContext(), seller)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.CommissionPaymentListResponse{Items: make([]dto.CommissionPaymentResponse, 0, len(payments))}
	for _, p := range payments {
		out.Items = append(out.Items, dto.FromCommissionPayment(p))
	}
	return c.JSON(out)
}
