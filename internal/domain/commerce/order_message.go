package commerce

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// OrderSummary reúne los datos del pedido que el vendedor reenvía por
// WhatsApp al cerrar una venta. Los campos de Lima (distrito, dirección) y
// los de Provincia (agencia, destino, estado de pago del envío) son
// mutuamente excluyentes según la ubicación.
type OrderSummary struct {
	Client      string
	DNI         string
	Phone       string
	Location    string // Lima | Provincia
	District    string
	Address     string
	Agency      string
	Destination string
	PaymentNote string // ej. "Pago Completo", "Adelanto 50%"
	Items       []CartLine
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	Comment     string
	Seller      string
}

// BuildOrderMessage arma el texto plano del pedido con el mismo formato que
// la tienda venía usando: encabezado, datos del cliente, destino según
// ubicación, detalle por prenda y total a cobrar.
func BuildOrderMessage(o OrderSummary) string {
	var b strings.Builder
	b.WriteString("*NUEVO PEDIDO - SYSTEM*\n")
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "*CLIENTE:* %s\n", strings.ToUpper(o.Client))
	if o.Phone != "" {
		fmt.Fprintf(&b, "*TEL:* %s\n", o.Phone)
	}
	if o.DNI != "" {
		fmt.Fprintf(&b, "*DNI:* %s\n", o.DNI)
	}

	if o.Location == entity.LocationLima {
		fmt.Fprintf(&b, "*DESTINO:* %s (LIMA)\n", strings.ToUpper(o.District))
		if o.Address != "" {
			fmt.Fprintf(&b, "*DIRECCIÓN:* %s\n", o.Address)
		}
	} else {
		fmt.Fprintf(&b, "*AGENCIA:* %s\n", strings.ToUpper(o.Agency))
		fmt.Fprintf(&b, "*DESTINO:* %s\n", strings.ToUpper(o.Destination))
		fmt.Fprintf(&b, "*ESTADO PAGO:* %s\n", strings.ToUpper(o.PaymentNote))
	}

	b.WriteString("----------------------------\n")
	b.WriteString("*PEDIDO:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %dx %s (%s - %s)\n",
			item.Quantity, item.Product.Name, item.Product.Color, item.Product.Size)
	}

	b.WriteString("----------------------------\n")
	if o.Comment != "" {
		fmt.Fprintf(&b, "*OBS:* %s\n", o.Comment)
	}
	if o.DeliveryFee.IsPositive() {
		fmt.Fprintf(&b, "*DELIVERY:* S/ %s\n", o.DeliveryFee.StringFixed(2))
	}
	fmt.Fprintf(&b, "*TOTAL A COBRAR: S/ %s*\n", o.Total.StringFixed(2))
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Vendedor: %s", o.Seller)
	return b.String()
}

// WhatsAppLink arma la URL wa.me para el número peruano indicado (prefijo
// +51 implícito). Descarta todo lo que no sea dígito del número recibido.
func WhatsAppLink(number, message string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/51" + digits.String() + "?text=" + url.QueryEscape(message)
}
