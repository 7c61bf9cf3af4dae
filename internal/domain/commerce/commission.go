// Package commerce contiene los servicios de dominio puros del negocio:
// comisiones, deltas de stock, deuda por vendedor y promociones.
package commerce

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// ComputeCommission calcula la comisión de una venta según la configuración
// vigente del producto:
//
//	monto:      valor × cantidad (el precio de venta no influye)
//	porcentaje: precio × cantidad × (valor / 100)
//
// Solo tiene sentido para movimientos de tipo Venta; el resultado se guarda
// en el movimiento con precisión completa y se redondea recién al mostrar
// o agregar totales.
func ComputeCommission(p *entity.Product, quantity int64, salePrice decimal.Decimal) decimal.Decimal {
	qty := decimal.NewFromInt(quantity)
	if p.CommissionKind == entity.CommissionFlat {
		return p.CommissionValue.Mul(qty)
	}
	return salePrice.Mul(qty).Mul(p.CommissionValue.Div(decimal.NewFromInt(100)))
}
