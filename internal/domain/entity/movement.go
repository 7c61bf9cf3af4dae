package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "Entrada" // reposición de stock
	MovementSalida  = "Salida"  // ajuste de salida (merma, préstamo, corrección)
	MovementVenta   = "Venta"   // venta a cliente
)

// Ubicaciones de una venta.
const (
	LocationLima      = "Lima"
	LocationProvincia = "Provincia"
)

// Estados de comisión de una venta.
const (
	CommissionPending = "Pendiente"
	CommissionPaid    = "Pagado"
)

// Estados de pago del pedido (solo ventas).
const (
	PaymentPending = "Pendiente"
	PaymentPaid    = "Pagado"
	PaymentPartial = "Adelanto"
)

// SellerSystem es el vendedor por defecto de los ajustes que no son venta.
const SellerSystem = "Sistema"

// ValidMovementType indica si el tipo es Entrada, Salida o Venta.
func ValidMovementType(t string) bool {
	return t == MovementEntrada || t == MovementSalida || t == MovementVenta
}

// Movement es un asiento inmutable del libro de stock: una entrada, una
// salida o una venta. Una vez creado solo admite el parche de estado de
// comisión (cuando se paga al vendedor).
//
// SalePrice, Commission, CommissionStatus, Location y PaymentStatus solo
// aplican a movimientos de tipo Venta; en los demás quedan en cero/vacío.
// Seller es el nombre visible del usuario, no un id: renombrar al
// usuario no actualiza ventas ya asentadas.
type Movement struct {
	ID               string
	ProductID        string
	Type             string // Entrada | Salida | Venta
	Quantity         int64  // siempre positiva; el signo lo da el tipo
	SalePrice        *decimal.Decimal
	Commission       *decimal.Decimal // foto al crear la venta, precisión completa
	CommissionStatus string           // Pendiente | Pagado | "" si no es venta
	Seller           string
	Location         string // Lima | Provincia | "" si no es venta
	Date             time.Time
	Comment          string
	OwnerID          string // propietario copiado del producto al crear
	PaymentStatus    string // Pendiente | Pagado | Adelanto | "" si no es venta
}

// IsSale indica si el movimiento es una venta.
func (m *Movement) IsSale() bool {
	return m.Type == MovementVenta
}
