package commerce

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// PendingDebtBySeller agrupa la comisión pendiente de pago por vendedor:
// filtra ventas con estado de comisión Pendiente y suma sus comisiones.
// Los movimientos sin vendedor cuentan bajo "Sistema". Las sumas conservan
// la precisión completa; el redondeo a 2 decimales es cosa de quien muestra.
func PendingDebtBySeller(movements []*entity.Movement) map[string]decimal.Decimal {
	debts := make(map[string]decimal.Decimal)
	for _, m := range movements {
		if !m.IsSale() || m.CommissionStatus != entity.CommissionPending || m.Commission == nil {
			continue
		}
		seller := m.Seller
		if seller == "" {
			seller = entity.SellerSystem
		}
		debts[seller] = debts[seller].Add(*m.Commission)
	}
	return debts
}
