package commerce_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de cálculo de comisión de venta
// ──────────────────────────────────────────────────────────────────────────────

// Comisión de monto fijo: valor × cantidad, el precio de venta no influye.
func TestComputeCommission_MontoFijo(t *testing.T) {
	p := &entity.Product{
		CommissionKind:  entity.CommissionFlat,
		CommissionValue: decimal.NewFromInt(5),
	}

	got := commerce.ComputeCommission(p, 3, decimal.NewFromInt(50))
	assert.True(t, got.Equal(decimal.NewFromInt(15)),
		"monto fijo 5 × 3 unidades debe dar 15, dio %s", got)
}

// El precio de venta no altera la comisión de monto fijo.
func TestComputeCommission_MontoFijoIgnoraPrecio(t *testing.T) {
	p := &entity.Product{
		CommissionKind:  entity.CommissionFlat,
		CommissionValue: decimal.NewFromInt(5),
	}

	conPrecioAlto := commerce.ComputeCommission(p, 2, decimal.NewFromInt(500))
	conPrecioBajo := commerce.ComputeCommission(p, 2, decimal.NewFromInt(5))
	assert.True(t, conPrecioAlto.Equal(conPrecioBajo))
}

// Comisión porcentual: precio × cantidad × (valor / 100).
func TestComputeCommission_Porcentaje(t *testing.T) {
	p := &entity.Product{
		CommissionKind:  entity.CommissionPercentage,
		CommissionValue: decimal.NewFromInt(10),
	}

	got := commerce.ComputeCommission(p, 2, decimal.NewFromInt(75))
	assert.True(t, got.Equal(decimal.NewFromInt(15)),
		"10%% de 75 × 2 debe dar 15, dio %s", got)
}

// La comisión porcentual conserva precisión completa; el redondeo a 2
// decimales es responsabilidad de quien presenta.
func TestComputeCommission_PorcentajeConservaPrecision(t *testing.T) {
	p := &entity.Product{
		CommissionKind:  entity.CommissionPercentage,
		CommissionValue: decimal.NewFromFloat(3.33),
	}

	got := commerce.ComputeCommission(p, 1, decimal.NewFromFloat(19.99))
	want := decimal.NewFromFloat(19.99).Mul(decimal.NewFromFloat(3.33)).Div(decimal.NewFromInt(100))
	assert.True(t, got.Equal(want), "esperado %s, dio %s", want, got)
	assert.True(t, got.Round(2).Equal(decimal.NewFromFloat(0.67)))
}
