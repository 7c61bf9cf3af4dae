package commissions

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// TxRunner ejecuta el cierre de comisiones en una transacción: el registro
// del pago y la marcación de ventas van juntos o no van.
type TxRunner interface {
	RunCommissions(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		payRepo repository.CommissionPaymentRepository,
	) error) error
}

// UseCase consulta deuda de comisiones por vendedor y liquida pagos.
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	payRepo  repository.CommissionPaymentRepository
}

// NewUseCase construye el caso de uso de comisiones.
func NewUseCase(txRunner TxRunner, movRepo repository.MovementRepository, payRepo repository.CommissionPaymentRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo, payRepo: payRepo}
}

// SellerDebt deuda pendiente de un vendedor, ya redondeada para mostrar.
type SellerDebt struct {
	Seller string
	Amount decimal.Decimal
}

// Debts devuelve la deuda de comisiones pendiente agrupada por vendedor,
// ordenada por nombre. Las sumas internas conservan precisión completa; el
// redondeo a 2 decimales ocurre recién acá, al presentar.
func (uc *UseCase) Debts(ctx context.Context) ([]SellerDebt, error) {
	movements, err := uc.movRepo.ListPendingSales("")
	if err != nil {
		return nil, fmt.Errorf("listando ventas pendientes: %w", err)
	}
	byDealer := commerce.PendingDebtBySeller(movements)
	debts := make([]SellerDebt, 0, len(byDealer))
	for seller, amount := range byDealer {
		debts = append(debts, SellerDebt{Seller: seller, Amount: amount.Round(2)})
	}
	sort.Slice(debts, func(i, j int) bool { return debts[i].Seller < debts[j].Seller })
	return debts, nil
}

// Pay liquida la deuda pendiente de un vendedor: registra el pago y marca
// como Pagadas todas sus comisiones pendientes, en una sola transacción.
// El monto recibido debe coincidir con la deuda recalculada al momento del
// pago; una diferencia significa que entraron ventas nuevas desde que se
// consultó y el pago se rechaza.
func (uc *UseCase) Pay(ctx context.Context, seller string, amount decimal.Decimal) (*entity.CommissionPayment, error) {
	if seller == "" || !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	pending, err := uc.movRepo.ListPendingSales(seller)
	if err != nil {
		return nil, fmt.Errorf("listando ventas pendientes de %s: %w", seller, err)
	}
	debt := commerce.PendingDebtBySeller(pending)[seller]
	if debt.IsZero() {
		return nil, domain.ErrNoPendingDebt
	}
	if !amount.Equal(debt.Round(2)) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	payment := &entity.CommissionPayment{
		ID:     uuid.New().String(),
		Seller: seller,
		Amount: amount,
		Date:   now,
		Period: periodLabel(now),
	}

	err = uc.txRunner.RunCommissions(ctx, func(
		movRepo repository.MovementRepository,
		payRepo repository.CommissionPaymentRepository,
	) error {
		if txErr := payRepo.Create(payment); txErr != nil {
			return txErr
		}
		marked, txErr := movRepo.MarkCommissionsPaid(seller)
		if txErr != nil {
			return txErr
		}
		if marked == 0 {
			return domain.ErrNoPendingDebt
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Payments lista el historial de pagos de comisiones. Con vendedor vacío
// devuelve todos los pagos; con vendedor, solo los suyos.
func (uc *UseCase) Payments(ctx context.Context, seller string) ([]*entity.CommissionPayment, error) {
	if seller == "" {
		return uc.payRepo.List()
	}
	return uc.payRepo.ListBySeller(seller)
}

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func periodLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", spanishMonths[t.Month()-1], t.Year())
}
