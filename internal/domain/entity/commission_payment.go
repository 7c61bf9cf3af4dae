package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionPayment registra la liquidación de comisiones a un vendedor.
// Se crea únicamente desde la acción de pago y nunca se edita ni borra;
// el pago marca como Pagado TODAS las ventas pendientes del vendedor en
// ese momento, no ventas puntuales.
type CommissionPayment struct {
	ID     string
	Seller string
	Amount decimal.Decimal
	Date   time.Time
	Period string // etiqueta legible, ej. "Septiembre 2026"
}
