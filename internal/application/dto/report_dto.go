package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen para el panel: totales de stock y ventas,
// partidos por ubicación, más la deuda de comisiones pendiente.
type DashboardResponse struct {
	TotalProducts  int                  `json:"total_prendas"`
	TotalStock     int64                `json:"stock_total"`
	StockValue     decimal.Decimal      `json:"valor_stock"`
	SalesCount     int                  `json:"ventas_registradas"`
	SalesAmount    decimal.Decimal      `json:"monto_vendido"`
	LimaSales      decimal.Decimal      `json:"ventas_lima"`
	ProvinceSales  decimal.Decimal      `json:"ventas_provincia"`
	PendingDebts   []SellerDebtResponse `json:"comisiones_pendientes"`
	PendingAmount  decimal.Decimal      `json:"total_comisiones_pendientes"`
}

// AISummaryResponse informe ejecutivo generado por el modelo de lenguaje.
type AISummaryResponse struct {
	Summary string `json:"resumen"`
}
