package entity

import "github.com/shopspring/decimal"

// Tipos de promoción.
const (
	PromoFixedBundle = "cantidad_fija"        // N unidades por precio cerrado
	PromoPercentage  = "descuento_porcentaje" // descuento % sobre el subtotal
)

// Estados de una promoción.
const (
	PromoActive   = "Activa"
	PromoInactive = "Inactiva"
)

// Promotion es una regla de precio cerrado: si el carrito acumula la
// cantidad requerida entre los modelos aplicables, el subtotal se
// reemplaza por PromoPrice. El enlace con productos es por nombre de
// modelo, no por id: todas las variantes de talla/color de un mismo
// modelo quedan cubiertas por una sola entrada.
type Promotion struct {
	ID               string
	Name             string
	Description      string
	Kind             string // cantidad_fija | descuento_porcentaje
	RequiredQty      int64
	PromoPrice       decimal.Decimal
	ApplicableModels []string
	OwnerID          string // propietario dueño de la promoción
	Status           string // Activa | Inactiva
}
