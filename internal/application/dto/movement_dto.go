package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Cubre entradas y salidas de stock; las ventas van por /api/sales.
type RegisterMovementRequest struct {
	ProductID string `json:"producto_id"`
	Type      string `json:"tipo"` // Entrada | Salida
	Quantity  int64  `json:"cantidad"`
	Comment   string `json:"comentario"`
}

// MovementResponse salida de un movimiento del historial.
type MovementResponse struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"producto_id"`
	Type             string           `json:"tipo"`
	Quantity         int64            `json:"cantidad"`
	SalePrice        *decimal.Decimal `json:"precio_venta,omitempty"`
	Commission       *decimal.Decimal `json:"comision_pagada,omitempty"`
	CommissionStatus string           `json:"estado_comision,omitempty"`
	Seller           string           `json:"vendedor"`
	Location         string           `json:"ubicacion,omitempty"`
	Date             time.Time        `json:"fecha"`
	Comment          string           `json:"comentario,omitempty"`
	OwnerID          string           `json:"propietario_id"`
	PaymentStatus    string           `json:"estado_pago,omitempty"`
}

// MovementListResponse historial paginado.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
