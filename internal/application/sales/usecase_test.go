package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Prendas-api/internal/application/sales"
	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error)                 { return nil, nil }
func (r *fakeProductRepo) ListByOwner(owner string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                           { return nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error)    { return nil, nil }
func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.Movement, error) { return r.movements, nil }
func (r *fakeMovementRepo) ListBySeller(seller string, limit, offset int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListPendingSales(seller string) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) MarkCommissionsPaid(seller string) (int64, error) { return 0, nil }

type fakePromoRepo struct {
	promos map[string]*entity.Promotion
}

func (r *fakePromoRepo) Create(p *entity.Promotion) error { r.promos[p.ID] = p; return nil }
func (r *fakePromoRepo) GetByID(id string) (*entity.Promotion, error) {
	return r.promos[id], nil
}
func (r *fakePromoRepo) List() ([]*entity.Promotion, error)                 { return nil, nil }
func (r *fakePromoRepo) ListByOwner(owner string) ([]*entity.Promotion, error) { return nil, nil }
func (r *fakePromoRepo) Delete(id string) error                             { return nil }

type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movRepo, r.productRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos variantes de un polo a S/ 40 y la promo "3 por 100".
// ──────────────────────────────────────────────────────────────────────────────

func buildFixture() (*sales.UseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"polo-m": {
			ID: "polo-m", Name: "Polo Basic", Size: entity.SizeM, Color: "Negro",
			Stock: 10, BasePrice: decimal.NewFromInt(40), Owner: entity.OwnerOne,
			CommissionValue: decimal.NewFromInt(10), CommissionKind: entity.CommissionPercentage,
		},
		"polo-l": {
			ID: "polo-l", Name: "Polo Basic", Size: entity.SizeL, Color: "Blanco",
			Stock: 10, BasePrice: decimal.NewFromInt(40), Owner: entity.OwnerOne,
			CommissionValue: decimal.NewFromInt(10), CommissionKind: entity.CommissionPercentage,
		},
	}}
	promoRepo := &fakePromoRepo{promos: map[string]*entity.Promotion{
		"promo-3x100": {
			ID: "promo-3x100", Name: "3 por 100", Kind: entity.PromoFixedBundle,
			RequiredQty: 3, PromoPrice: decimal.NewFromInt(100),
			ApplicableModels: []string{"Polo Basic"}, Status: entity.PromoActive,
		},
	}}
	movRepo := &fakeMovementRepo{}
	uc := sales.NewUseCase(&fakeTxRunner{movRepo, productRepo}, productRepo, promoRepo)
	return uc, productRepo, movRepo
}

func ventaLima(lines []sales.SaleLine) sales.SaleInput {
	return sales.SaleInput{
		Lines:      lines,
		Location:   entity.LocationLima,
		ClientName: "Maria Lopez",
		District:   "Miraflores",
		Address:    "Av. Pardo 123",
		Seller:     "Ana",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Venta simple: un movimiento por línea, stock descontado, delivery por
// distrito y mensaje de pedido armado.
func TestRegisterSale_VentaSimpleLima(t *testing.T) {
	uc, productRepo, movRepo := buildFixture()

	result, err := uc.RegisterSale(context.Background(), ventaLima([]sales.SaleLine{
		{ProductID: "polo-m", Quantity: 2},
	}))
	require.NoError(t, err)

	require.Len(t, result.Movements, 1)
	mov := result.Movements[0]
	assert.Equal(t, entity.MovementVenta, mov.Type)
	assert.True(t, mov.SalePrice.Equal(decimal.NewFromInt(40)), "sin promo el precio es el base")
	assert.Equal(t, "Ana", mov.Seller)
	assert.Equal(t, entity.LocationLima, mov.Location)

	assert.Equal(t, int64(8), productRepo.products["polo-m"].Stock)
	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(80)))
	assert.True(t, result.DeliveryFee.Equal(decimal.NewFromInt(10)), "Miraflores cobra S/ 10")
	assert.True(t, result.Total.Equal(decimal.NewFromInt(90)))
	assert.Contains(t, result.OrderMessage, "*TOTAL A COBRAR: S/ 90.00*")
	assert.Len(t, movRepo.movements, 1)
}

// Con promoción el precio promocional se reparte entre las líneas con el
// factor sobre el subtotal natural: 3 polos a 40 (120) por 100 → cada
// unidad queda a 33.33.
func TestRegisterSale_PromocionReparteElPrecio(t *testing.T) {
	uc, productRepo, _ := buildFixture()

	input := ventaLima([]sales.SaleLine{
		{ProductID: "polo-m", Quantity: 2},
		{ProductID: "polo-l", Quantity: 1},
	})
	input.PromotionID = "promo-3x100"

	result, err := uc.RegisterSale(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, result.Movements, 2)
	for _, mov := range result.Movements {
		assert.True(t, mov.SalePrice.Equal(decimal.NewFromFloat(33.33)),
			"cada unidad debe quedar a 33.33, dio %s", mov.SalePrice)
	}
	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(100)), "el subtotal es el precio promo")
	assert.Equal(t, int64(8), productRepo.products["polo-m"].Stock)
	assert.Equal(t, int64(9), productRepo.products["polo-l"].Stock)
}

// La comisión de cada línea se calcula sobre el precio promocional efectivo.
func TestRegisterSale_ComisionSobrePrecioPromocional(t *testing.T) {
	uc, _, _ := buildFixture()

	input := ventaLima([]sales.SaleLine{
		{ProductID: "polo-m", Quantity: 3},
	})
	input.PromotionID = "promo-3x100"

	result, err := uc.RegisterSale(context.Background(), input)
	require.NoError(t, err)

	mov := result.Movements[0]
	// 10% de 33.33 × 3 = 10.00 (redondeado al presentar)
	assert.True(t, mov.Commission.Round(2).Equal(decimal.NewFromFloat(10.00)),
		"comisión dio %s", mov.Commission.Round(2))
}

// Un carrito que no alcanza la cantidad requerida no puede usar la promo.
func TestRegisterSale_PromoNoElegibleRechaza(t *testing.T) {
	uc, productRepo, movRepo := buildFixture()

	input := ventaLima([]sales.SaleLine{{ProductID: "polo-m", Quantity: 2}})
	input.PromotionID = "promo-3x100"

	_, err := uc.RegisterSale(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrPromoNotEligible)
	assert.Equal(t, int64(10), productRepo.products["polo-m"].Stock, "nada debe persistirse")
	assert.Empty(t, movRepo.movements)
}

// Provincia: sin tarifa de delivery y con agencia/destino obligatorios.
func TestRegisterSale_Provincia(t *testing.T) {
	uc, _, _ := buildFixture()

	result, err := uc.RegisterSale(context.Background(), sales.SaleInput{
		Lines:       []sales.SaleLine{{ProductID: "polo-m", Quantity: 1}},
		Location:    entity.LocationProvincia,
		ClientName:  "Jorge Ruiz",
		Agency:      "Shalom",
		Destination: "Arequipa",
		PaymentNote: "Adelanto 50%",
		Seller:      "Luis",
	})
	require.NoError(t, err)

	assert.True(t, result.DeliveryFee.IsZero(), "provincia no cobra delivery de Lima")
	assert.Contains(t, result.OrderMessage, "*AGENCIA:* SHALOM")
}

func TestRegisterSale_ValidaDatosDeEnvio(t *testing.T) {
	uc, _, _ := buildFixture()

	// Lima sin distrito
	_, err := uc.RegisterSale(context.Background(), sales.SaleInput{
		Lines:      []sales.SaleLine{{ProductID: "polo-m", Quantity: 1}},
		Location:   entity.LocationLima,
		ClientName: "Maria",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Provincia sin agencia
	_, err = uc.RegisterSale(context.Background(), sales.SaleInput{
		Lines:       []sales.SaleLine{{ProductID: "polo-m", Quantity: 1}},
		Location:    entity.LocationProvincia,
		ClientName:  "Maria",
		Destination: "Cusco",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Carrito vacío
	_, err = uc.RegisterSale(context.Background(), ventaLima(nil))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterSale_PrendaInexistente(t *testing.T) {
	uc, _, _ := buildFixture()

	_, err := uc.RegisterSale(context.Background(), ventaLima([]sales.SaleLine{
		{ProductID: "no-existe", Quantity: 1},
	}))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderLink_GeneraEnlace(t *testing.T) {
	uc, _, _ := buildFixture()

	link, err := uc.OrderLink("987654321", "pedido")
	require.NoError(t, err)
	assert.Contains(t, link, "wa.me/51987654321")

	_, err = uc.OrderLink("", "pedido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeliveryOptions_DevuelveTablaYAgencias(t *testing.T) {
	uc, _, _ := buildFixture()

	districts, agencies := uc.DeliveryOptions()
	assert.Len(t, districts, 42)
	assert.Contains(t, agencies, "Shalom")
	assert.Contains(t, agencies, "Otro")
}
