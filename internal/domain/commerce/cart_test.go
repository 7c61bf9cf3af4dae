package commerce_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

func linea(modelo, talla string, cantidad int64, precio float64) commerce.CartLine {
	return commerce.CartLine{
		Product:   &entity.Product{Name: modelo, Size: talla},
		Quantity:  cantidad,
		UnitPrice: decimal.NewFromFloat(precio),
	}
}

func promo3x100(modelos ...string) *entity.Promotion {
	return &entity.Promotion{
		ID:               "promo-1",
		Name:             "3 por 100",
		Kind:             entity.PromoFixedBundle,
		RequiredQty:      3,
		PromoPrice:       decimal.NewFromInt(100),
		ApplicableModels: modelos,
		Status:           entity.PromoActive,
	}
}

func TestSubtotal_SumaPrecioPorCantidad(t *testing.T) {
	cart := []commerce.CartLine{
		linea("Polo Basic", "M", 2, 40),
		linea("Casaca Denim", "L", 1, 120),
	}
	assert.True(t, commerce.Subtotal(cart).Equal(decimal.NewFromInt(200)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Elegibilidad de promociones
// ──────────────────────────────────────────────────────────────────────────────

// Las variantes de talla/color de un mismo modelo suman juntas para la
// cantidad requerida.
func TestEligiblePromotions_VariantesDelMismoModeloSuman(t *testing.T) {
	cart := []commerce.CartLine{
		linea("Polo Basic", "S", 1, 40),
		linea("Polo Basic", "M", 1, 40),
		linea("Polo Basic", "L", 1, 40),
	}

	eligible := commerce.EligiblePromotions(cart, []*entity.Promotion{promo3x100("Polo Basic")})
	require.Len(t, eligible, 1, "tres variantes del mismo modelo deben cumplir la promo de 3")
	assert.Equal(t, "promo-1", eligible[0].ID)
}

func TestEligiblePromotions_CantidadInsuficienteNoCalifica(t *testing.T) {
	cart := []commerce.CartLine{linea("Polo Basic", "M", 2, 40)}
	assert.Empty(t, commerce.EligiblePromotions(cart, []*entity.Promotion{promo3x100("Polo Basic")}))
}

// Los modelos fuera de la lista aplicable no cuentan para la cantidad.
func TestEligiblePromotions_ModeloAjenoNoCuenta(t *testing.T) {
	cart := []commerce.CartLine{
		linea("Polo Basic", "M", 2, 40),
		linea("Casaca Denim", "L", 5, 120),
	}
	assert.Empty(t, commerce.EligiblePromotions(cart, []*entity.Promotion{promo3x100("Polo Basic")}))
}

func TestEligiblePromotions_InactivaNoCalifica(t *testing.T) {
	promo := promo3x100("Polo Basic")
	promo.Status = entity.PromoInactive

	cart := []commerce.CartLine{linea("Polo Basic", "M", 3, 40)}
	assert.Empty(t, commerce.EligiblePromotions(cart, []*entity.Promotion{promo}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Factor de precio promocional
// ──────────────────────────────────────────────────────────────────────────────

// El factor reparte el precio promocional entre las líneas: con subtotal
// natural 120 y promo a 100, cada línea queda a 100/120 de su precio.
func TestPriceFactor_ReparteElPrecioPromocional(t *testing.T) {
	factor := commerce.PriceFactor(decimal.NewFromInt(100), decimal.NewFromInt(120))

	precioLinea := decimal.NewFromInt(40).Mul(factor)
	assert.True(t, precioLinea.Round(2).Equal(decimal.NewFromFloat(33.33)),
		"40 × (100/120) redondeado debe dar 33.33, dio %s", precioLinea.Round(2))
}

// El factor se calcula SIEMPRE sobre el subtotal previo a la promoción:
// aplicar el factor a precios ya descontados compondría el descuento.
func TestPriceFactor_NoSeComponeSobrePreciosDescontados(t *testing.T) {
	natural := decimal.NewFromInt(120)
	promo := decimal.NewFromInt(100)

	factor := commerce.PriceFactor(promo, natural)
	descontado := natural.Mul(factor) // 100

	factorSobreDescontado := commerce.PriceFactor(promo, descontado)
	assert.True(t, factorSobreDescontado.Equal(decimal.NewFromInt(1)),
		"recalcular sobre el total ya descontado daría factor 1, no otro descuento")

	factorRepetido := commerce.PriceFactor(promo, natural)
	assert.True(t, factor.Equal(factorRepetido), "el factor correcto es estable")
}

func TestPriceFactor_SubtotalCeroDevuelveUno(t *testing.T) {
	factor := commerce.PriceFactor(decimal.NewFromInt(100), decimal.Zero)
	assert.True(t, factor.Equal(decimal.NewFromInt(1)))
}
