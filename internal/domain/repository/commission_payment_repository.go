package repository

import "github.com/jhoicas/Prendas-api/internal/domain/entity"

// CommissionPaymentRepository define el puerto de persistencia para los
// pagos de comisiones. Solo alta y lectura: un pago nunca se edita ni borra.
type CommissionPaymentRepository interface {
	Create(payment *entity.CommissionPayment) error
	List() ([]*entity.CommissionPayment, error)
	ListBySeller(seller string) ([]*entity.CommissionPayment, error)
}
