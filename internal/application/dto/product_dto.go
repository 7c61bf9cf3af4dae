package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar una prenda. Si Stock > 0 el
// alta genera además un movimiento de Entrada con esa cantidad.
type CreateProductRequest struct {
	Name            string          `json:"nombre"`
	Size            string          `json:"talla"`
	Color           string          `json:"color"`
	Stock           int64           `json:"stock"`
	BasePrice       decimal.Decimal `json:"precio_base"`
	Owner           string          `json:"propietario"`
	CommissionValue decimal.Decimal `json:"comision_valor"`
	CommissionKind  string          `json:"comision_tipo"`
}

// UpdateProductRequest entrada para editar una prenda. El stock no se edita
// por esta vía; solo cambia registrando movimientos.
type UpdateProductRequest struct {
	Name            *string          `json:"nombre"`
	Size            *string          `json:"talla"`
	Color           *string          `json:"color"`
	BasePrice       *decimal.Decimal `json:"precio_base"`
	Owner           *string          `json:"propietario"`
	CommissionValue *decimal.Decimal `json:"comision_valor"`
	CommissionKind  *string          `json:"comision_tipo"`
}

// ProductResponse salida de una prenda.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"nombre"`
	Size            string          `json:"talla"`
	Color           string          `json:"color"`
	Stock           int64           `json:"stock"`
	BasePrice       decimal.Decimal `json:"precio_base"`
	Owner           string          `json:"propietario"`
	CommissionValue decimal.Decimal `json:"comision_valor"`
	CommissionKind  string          `json:"comision_tipo"`
	StockValue      decimal.Decimal `json:"valor_stock"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista de prendas.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
