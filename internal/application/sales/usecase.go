package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/application/inventory"
	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/delivery"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// UseCase registra ventas de carrito completo: varias prendas, promoción
// opcional y datos de envío. Todas las líneas se asientan en una sola
// transacción junto con los descuentos de stock.
type UseCase struct {
	txRunner    inventory.TxRunner
	productRepo repository.ProductRepository
	promoRepo   repository.PromotionRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(txRunner inventory.TxRunner, productRepo repository.ProductRepository, promoRepo repository.PromotionRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, promoRepo: promoRepo}
}

// SaleLine una línea del carrito. UnitPrice en cero significa usar el precio
// base de la prenda.
type SaleLine struct {
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// SaleInput entrada para registrar una venta.
type SaleInput struct {
	Lines       []SaleLine
	Location    string
	PromotionID string

	ClientName  string
	ClientPhone string
	ClientDNI   string

	District string
	Address  string

	Agency      string
	Destination string
	PaymentNote string

	PaymentStatus string
	Comment       string
	Seller        string
}

// SaleResult venta registrada: movimientos creados, totales y texto del
// pedido listo para reenviar por WhatsApp.
type SaleResult struct {
	Movements    []*entity.Movement
	Subtotal     decimal.Decimal
	DeliveryFee  decimal.Decimal
	Total        decimal.Decimal
	OrderMessage string
}

// RegisterSale valida el carrito y los datos de envío, aplica la promoción
// elegida si el carrito la cumple y registra cada línea como un movimiento
// de Venta dentro de la misma transacción.
//
// Cuando hay promoción, el precio promocional se reparte entre las líneas
// con un factor calculado sobre el subtotal natural (previo a la
// promoción); el factor nunca se recalcula sobre precios ya descontados.
func (uc *UseCase) RegisterSale(ctx context.Context, input SaleInput) (*SaleResult, error) {
	if len(input.Lines) == 0 || input.ClientName == "" {
		return nil, domain.ErrInvalidInput
	}
	switch input.Location {
	case entity.LocationLima:
		if input.District == "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.LocationProvincia:
		if input.Agency == "" || input.Destination == "" {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.PaymentStatus == "" {
		input.PaymentStatus = entity.PaymentPending
	}

	cart := make([]commerce.CartLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		unitPrice := line.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.BasePrice
		}
		cart = append(cart, commerce.CartLine{
			Product:   product,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
		})
	}

	subtotal := commerce.Subtotal(cart)
	factor := decimal.NewFromInt(1)
	if input.PromotionID != "" {
		promo, err := uc.promoRepo.GetByID(input.PromotionID)
		if err != nil {
			return nil, err
		}
		if promo == nil {
			return nil, domain.ErrNotFound
		}
		eligible := commerce.EligiblePromotions(cart, []*entity.Promotion{promo})
		if len(eligible) == 0 {
			return nil, domain.ErrPromoNotEligible
		}
		factor = commerce.PriceFactor(promo.PromoPrice, subtotal)
		subtotal = promo.PromoPrice
	}

	var deliveryFee decimal.Decimal
	if input.Location == entity.LocationLima {
		deliveryFee = delivery.FeeFor(input.District)
	}

	var movements []*entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		for _, line := range cart {
			salePrice := line.UnitPrice.Mul(factor).Round(2)
			mov, txErr := inventory.RegisterInTx(movRepo, productRepo, line.Product, inventory.MovementInput{
				ProductID:     line.Product.ID,
				Type:          entity.MovementVenta,
				Quantity:      line.Quantity,
				SalePrice:     &salePrice,
				Seller:        input.Seller,
				Location:      input.Location,
				Comment:       input.Comment,
				PaymentStatus: input.PaymentStatus,
			}, now)
			if txErr != nil {
				return txErr
			}
			movements = append(movements, mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := subtotal.Add(deliveryFee)
	message := commerce.BuildOrderMessage(commerce.OrderSummary{
		Client:      input.ClientName,
		DNI:         input.ClientDNI,
		Phone:       input.ClientPhone,
		Location:    input.Location,
		District:    input.District,
		Address:     input.Address,
		Agency:      input.Agency,
		Destination: input.Destination,
		PaymentNote: input.PaymentNote,
		Items:       cart,
		DeliveryFee: deliveryFee,
		Total:       total,
		Comment:     input.Comment,
		Seller:      sellerOrSystem(input.Seller),
	})

	return &SaleResult{
		Movements:    movements,
		Subtotal:     subtotal.Round(2),
		DeliveryFee:  deliveryFee,
		Total:        total.Round(2),
		OrderMessage: message,
	}, nil
}

// OrderLink arma el enlace wa.me para reenviar el texto del pedido.
func (uc *UseCase) OrderLink(number, message string) (string, error) {
	if number == "" || message == "" {
		return "", domain.ErrInvalidInput
	}
	return commerce.WhatsAppLink(number, message), nil
}

// DeliveryOptions devuelve la tabla de distritos de Lima con sus tarifas y
// las agencias disponibles para envíos a provincia.
func (uc *UseCase) DeliveryOptions() ([]delivery.District, []string) {
	agencies := make([]string, len(delivery.ProvinceAgencies))
	copy(agencies, delivery.ProvinceAgencies)
	return delivery.Districts(), agencies
}

func sellerOrSystem(seller string) string {
	if seller == "" {
		return entity.SellerSystem
	}
	return seller
}
