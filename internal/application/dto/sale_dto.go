package dto

import "github.com/shopspring/decimal"

// SaleLineRequest una línea del carrito: prenda, cantidad y precio unitario
// pactado (cero = usar el precio base de la prenda).
type SaleLineRequest struct {
	ProductID string          `json:"producto_id"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// RegisterSaleRequest body para POST /api/sales. Los campos de Lima
// (distrito, dirección) y los de Provincia (agencia, destino) aplican según
// Location; PromotionID es opcional y debe ser una promoción que el carrito
// ya cumple.
type RegisterSaleRequest struct {
	Lines       []SaleLineRequest `json:"items"`
	Location    string            `json:"ubicacion"` // Lima | Provincia
	PromotionID string            `json:"promocion_id,omitempty"`

	ClientName  string `json:"cliente_nombre"`
	ClientPhone string `json:"cliente_telefono,omitempty"`
	ClientDNI   string `json:"cliente_dni,omitempty"`

	District string `json:"distrito,omitempty"`  // Lima
	Address  string `json:"direccion,omitempty"` // Lima

	Agency      string `json:"agencia,omitempty"` // Provincia
	Destination string `json:"destino,omitempty"` // Provincia
	PaymentNote string `json:"estado_pago_envio,omitempty"`

	PaymentStatus string `json:"estado_pago"` // Pendiente | Pagado | Adelanto
	Comment       string `json:"comentario,omitempty"`
}

// SaleResponse resultado de registrar la venta: los movimientos creados,
// los totales y el texto del pedido listo para reenviar.
type SaleResponse struct {
	Movements    []MovementResponse `json:"movimientos"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	DeliveryFee  decimal.Decimal    `json:"costo_delivery"`
	Total        decimal.Decimal    `json:"total"`
	OrderMessage string             `json:"mensaje_pedido"`
}

// OrderLinkRequest body para generar el enlace de WhatsApp de un pedido.
type OrderLinkRequest struct {
	Number  string `json:"numero"`
	Message string `json:"mensaje"`
}

// OrderLinkResponse enlace wa.me listo para abrir.
type OrderLinkResponse struct {
	URL string `json:"url"`
}

// DistrictResponse un distrito con su tarifa de delivery.
type DistrictResponse struct {
	Name string          `json:"nombre"`
	Fee  decimal.Decimal `json:"costo"`
	Zone string          `json:"zona"`
}

// DeliveryOptionsResponse tabla de distritos y agencias de provincia.
type DeliveryOptionsResponse struct {
	Districts []DistrictResponse `json:"distritos"`
	Agencies  []string           `json:"agencias"`
}
