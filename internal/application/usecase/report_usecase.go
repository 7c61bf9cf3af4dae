package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/application/dto"
	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// movementScanLimit tope de movimientos que se cargan para agregados del
// panel. El negocio mueve decenas de ventas al día; un tope de miles cubre
// con holgura el horizonte que el panel resume.
const movementScanLimit = 5000

// ReportUseCase arma los agregados del panel de control.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, movRepo: movRepo}
}

// Dashboard calcula los totales del panel con el alcance del rol: el Dueño
// ve su catálogo y las ventas de sus prendas; los demás ven todo.
func (uc *ReportUseCase) Dashboard(ctx context.Context, role, owner string) (*dto.DashboardResponse, error) {
	var (
		products []*entity.Product
		err      error
	)
	scoped := role == entity.RoleOwner && owner != ""
	if scoped {
		products, err = uc.productRepo.ListByOwner(owner)
	} else {
		products, err = uc.productRepo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("listando prendas: %w", err)
	}

	movements, err := uc.movRepo.List(movementScanLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("listando movimientos: %w", err)
	}

	resp := &dto.DashboardResponse{TotalProducts: len(products)}
	for _, p := range products {
		resp.TotalStock += p.Stock
		resp.StockValue = resp.StockValue.Add(p.StockValue())
	}

	var sales []*entity.Movement
	for _, m := range movements {
		if !m.IsSale() {
			continue
		}
		if scoped && m.OwnerID != owner {
			continue
		}
		sales = append(sales, m)
		// Filas antiguas o editadas a mano pueden venir sin precio de venta.
		if m.SalePrice == nil {
			continue
		}
		amount := m.SalePrice.Mul(decimal.NewFromInt(m.Quantity))
		resp.SalesAmount = resp.SalesAmount.Add(amount)
		if m.Location == entity.LocationProvincia {
			resp.ProvinceSales = resp.ProvinceSales.Add(amount)
		} else {
			resp.LimaSales = resp.LimaSales.Add(amount)
		}
	}
	resp.SalesCount = len(sales)

	for seller, amount := range commerce.PendingDebtBySeller(sales) {
		resp.PendingDebts = append(resp.PendingDebts, dto.SellerDebtResponse{
			Seller: seller,
			Amount: amount.Round(2),
		})
		resp.PendingAmount = resp.PendingAmount.Add(amount)
	}
	sort.Slice(resp.PendingDebts, func(i, j int) bool {
		return resp.PendingDebts[i].Seller < resp.PendingDebts[j].Seller
	})

	resp.StockValue = resp.StockValue.Round(2)
	resp.SalesAmount = resp.SalesAmount.Round(2)
	resp.LimaSales = resp.LimaSales.Round(2)
	resp.ProvinceSales = resp.ProvinceSales.Round(2)
	resp.PendingAmount = resp.PendingAmount.Round(2)
	return resp, nil
}
