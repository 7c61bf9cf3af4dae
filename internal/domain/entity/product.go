package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tallas de prenda admitidas.
const (
	SizeXS     = "XS"
	SizeS      = "S"
	SizeM      = "M"
	SizeL      = "L"
	SizeXL     = "XL"
	SizeXXL    = "XXL"
	SizeUnique = "Única"
)

// Propietarios del negocio: tres socios fijos. Los productos y las
// promociones se particionan por propietario; no es una entidad propia.
const (
	OwnerOne   = "Dueño 1"
	OwnerTwo   = "Dueño 2"
	OwnerThree = "Dueño 3"
)

// Tipos de comisión configurables por producto.
const (
	CommissionFlat       = "monto"      // monto fijo por unidad vendida
	CommissionPercentage = "porcentaje" // % sobre el precio de venta
)

// Owners lista los propietarios válidos.
func Owners() []string {
	return []string{OwnerOne, OwnerTwo, OwnerThree}
}

// ValidSize indica si la talla es una de las admitidas.
func ValidSize(s string) bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeUnique:
		return true
	}
	return false
}

// ValidOwner indica si el propietario es uno de los tres socios.
func ValidOwner(o string) bool {
	return o == OwnerOne || o == OwnerTwo || o == OwnerThree
}

// Product representa una prenda del inventario (modelo + talla + color).
// Stock se muta únicamente como efecto de un movimiento y puede quedar
// negativo (no se recorta a cero al registrar una venta mayor al conteo).
// CommissionValue/CommissionKind son la configuración vigente: cada
// movimiento de venta guarda su propia foto de la comisión al crearse.
type Product struct {
	ID              string
	Name            string // modelo; clave de agrupación para promociones
	Size            string
	Color           string
	Stock           int64
	BasePrice       decimal.Decimal
	Owner           string
	CommissionValue decimal.Decimal
	CommissionKind  string // monto | porcentaje
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StockValue devuelve el valor del stock a precio base (stock × precio).
func (p *Product) StockValue() decimal.Decimal {
	return p.BasePrice.Mul(decimal.NewFromInt(p.Stock))
}
