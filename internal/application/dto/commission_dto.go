package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerDebtResponse deuda de comisión pendiente de un vendedor,
// redondeada a 2 decimales para presentación.
type SellerDebtResponse struct {
	Seller string          `json:"vendedor"`
	Amount decimal.Decimal `json:"monto"`
}

// DebtListResponse deudas pendientes por vendedor.
type DebtListResponse struct {
	Items []SellerDebtResponse `json:"items"`
}

// PayCommissionsRequest body para liquidar a un vendedor. Amount debe
// coincidir con la deuda pendiente recalculada en el servidor.
type PayCommissionsRequest struct {
	Seller string          `json:"vendedor"`
	Amount decimal.Decimal `json:"monto"`
}

// CommissionPaymentResponse un pago de comisiones registrado.
type CommissionPaymentResponse struct {
	ID     string          `json:"id"`
	Seller string          `json:"vendedor"`
	Amount decimal.Decimal `json:"monto"`
	Date   time.Time       `json:"fecha"`
	Period string          `json:"periodo"`
}

// CommissionPaymentListResponse historial de pagos.
type CommissionPaymentListResponse struct {
	Items []CommissionPaymentResponse `json:"items"`
}
