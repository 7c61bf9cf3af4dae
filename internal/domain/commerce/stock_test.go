package commerce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

func TestApplyStockDelta_EntradaSuma(t *testing.T) {
	assert.Equal(t, int64(20), commerce.ApplyStockDelta(0, entity.MovementEntrada, 20))
}

func TestApplyStockDelta_SalidaResta(t *testing.T) {
	assert.Equal(t, int64(17), commerce.ApplyStockDelta(20, entity.MovementSalida, 3))
}

func TestApplyStockDelta_VentaResta(t *testing.T) {
	assert.Equal(t, int64(15), commerce.ApplyStockDelta(18, entity.MovementVenta, 3))
}

// El stock negativo se conserva tal cual: vender más de lo contado deja el
// faltante visible en lugar de recortar a cero.
func TestApplyStockDelta_VentaPuedeDejarNegativo(t *testing.T) {
	assert.Equal(t, int64(-2), commerce.ApplyStockDelta(1, entity.MovementVenta, 3),
		"el stock debe quedar en -2, sin recorte a cero")
}

func TestApplyStockDelta_TipoDesconocidoNoCambia(t *testing.T) {
	assert.Equal(t, int64(7), commerce.ApplyStockDelta(7, "Ajuste", 3))
}
