package commerce

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// CartLine es una línea de venta: una prenda concreta, su cantidad y el
// precio unitario pactado (por defecto el precio base del producto).
type CartLine struct {
	Product   *entity.Product
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Subtotal suma precio × cantidad de todas las líneas, antes de promoción.
func Subtotal(cart []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range cart {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
	}
	return total
}

// EligiblePromotions devuelve las promociones activas que el carrito ya
// cumple: la suma de cantidades de las líneas cuyo modelo figura en la
// promoción alcanza la cantidad requerida. Las variantes de talla/color de
// un mismo modelo suman juntas. Puede calificar más de una promoción a la
// vez; elegir cuál aplicar es decisión del vendedor (gana la última
// aplicada, no se acumulan).
func EligiblePromotions(cart []CartLine, promotions []*entity.Promotion) []*entity.Promotion {
	var eligible []*entity.Promotion
	for _, promo := range promotions {
		if promo.Status != entity.PromoActive {
			continue
		}
		var qualifying int64
		for _, line := range cart {
			if containsModel(promo.ApplicableModels, line.Product.Name) {
				qualifying += line.Quantity
			}
		}
		if qualifying >= promo.RequiredQty {
			eligible = append(eligible, promo)
		}
	}
	return eligible
}

// PriceFactor devuelve el factor de ajuste que reparte el precio
// promocional entre las líneas: promoPrice / subtotal natural. Se calcula
// SIEMPRE sobre el subtotal previo a la promoción, nunca sobre un total ya
// descontado, para no componer el descuento. Con subtotal cero devuelve 1.
func PriceFactor(promoPrice, naturalSubtotal decimal.Decimal) decimal.Decimal {
	if naturalSubtotal.IsZero() {
		return decimal.NewFromInt(1)
	}
	return promoPrice.Div(naturalSubtotal)
}

func containsModel(models []string, name string) bool {
	for _, m := range models {
		if m == name {
			return true
		}
	}
	return false
}
