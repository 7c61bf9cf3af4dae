package commerce_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

func TestBuildOrderMessage_PedidoLima(t *testing.T) {
	msg := commerce.BuildOrderMessage(commerce.OrderSummary{
		Client:   "maria lopez",
		Phone:    "987654321",
		Location: entity.LocationLima,
		District: "Miraflores",
		Address:  "Av. Pardo 123",
		Items: []commerce.CartLine{
			{Product: &entity.Product{Name: "Polo Basic", Color: "Negro", Size: "M"}, Quantity: 2},
		},
		DeliveryFee: decimal.NewFromInt(10),
		Total:       decimal.NewFromInt(90),
		Seller:      "Ana",
	})

	assert.True(t, strings.HasPrefix(msg, "*NUEVO PEDIDO - SYSTEM*\n"), "encabezado fijo del pedido")
	assert.Contains(t, msg, "*CLIENTE:* MARIA LOPEZ")
	assert.Contains(t, msg, "*DESTINO:* MIRAFLORES (LIMA)")
	assert.Contains(t, msg, "*DIRECCIÓN:* Av. Pardo 123")
	assert.Contains(t, msg, "- 2x Polo Basic (Negro - M)")
	assert.Contains(t, msg, "*DELIVERY:* S/ 10.00")
	assert.Contains(t, msg, "*TOTAL A COBRAR: S/ 90.00*")
	assert.Contains(t, msg, "Vendedor: Ana")
}

func TestBuildOrderMessage_PedidoProvincia(t *testing.T) {
	msg := commerce.BuildOrderMessage(commerce.OrderSummary{
		Client:      "Jorge Ruiz",
		DNI:         "45678912",
		Location:    entity.LocationProvincia,
		Agency:      "Shalom",
		Destination: "Arequipa",
		PaymentNote: "Adelanto 50%",
		Items: []commerce.CartLine{
			{Product: &entity.Product{Name: "Casaca Denim", Color: "Azul", Size: "L"}, Quantity: 1},
		},
		Total:  decimal.NewFromInt(120),
		Seller: "Luis",
	})

	assert.Contains(t, msg, "*DNI:* 45678912")
	assert.Contains(t, msg, "*AGENCIA:* SHALOM")
	assert.Contains(t, msg, "*DESTINO:* AREQUIPA")
	assert.Contains(t, msg, "*ESTADO PAGO:* ADELANTO 50%")
	assert.NotContains(t, msg, "(LIMA)", "un pedido de provincia no lleva destino de Lima")
	assert.NotContains(t, msg, "*DELIVERY:*", "sin costo de delivery no se imprime la línea")
}

// El enlace lleva prefijo peruano fijo y el mensaje URL-escapado; los
// caracteres no numéricos del teléfono se descartan.
func TestWhatsAppLink_NormalizaNumeroYEscapaMensaje(t *testing.T) {
	link := commerce.WhatsAppLink("987 654-321", "hola *pedido*")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/51987654321?text="), "dio %s", link)
	assert.Contains(t, link, "hola+%2Apedido%2A")
}
