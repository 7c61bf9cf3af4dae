package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Prendas-api/internal/application/usecase"
	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) ListByOwner(owner string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Owner == owner {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakePromoRepo struct {
	promos map[string]*entity.Promotion
}

func (r *fakePromoRepo) Create(p *entity.Promotion) error               { r.promos[p.ID] = p; return nil }
func (r *fakePromoRepo) GetByID(id string) (*entity.Promotion, error)   { return r.promos[id], nil }
func (r *fakePromoRepo) List() ([]*entity.Promotion, error) {
	out := make([]*entity.Promotion, 0, len(r.promos))
	for _, p := range r.promos {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakePromoRepo) ListByOwner(owner string) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	for _, p := range r.promos {
		if p.OwnerID == owner {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakePromoRepo) Delete(id string) error { delete(r.promos, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error)        { return nil, nil }
func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.Movement, error) { return r.movements, nil }
func (r *fakeMovementRepo) ListBySeller(seller string, limit, offset int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) ListPendingSales(seller string) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) MarkCommissionsPaid(seller string) (int64, error) { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestProvision_CreaCuentaConHash(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	user, err := uc.Provision(context.Background(), usecase.ProvisionInput{
		Name:     "Ana Torres",
		Email:    "ana@tienda.pe",
		Password: "clave123",
		Role:     entity.RoleSeller,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.UserActive, user.Status)
	assert.NotEqual(t, "clave123", user.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("clave123")))
}

// El rol Dueño exige un propietario asignado válido.
func TestProvision_DuenoRequierePropietario(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{users: map[string]*entity.User{}})

	_, err := uc.Provision(context.Background(), usecase.ProvisionInput{
		Name: "Pedro", Email: "pedro@tienda.pe", Password: "clave123",
		Role: entity.RoleOwner,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	user, err := uc.Provision(context.Background(), usecase.ProvisionInput{
		Name: "Pedro", Email: "pedro@tienda.pe", Password: "clave123",
		Role: entity.RoleOwner, AssignedOwner: entity.OwnerTwo,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerTwo, user.AssignedOwner)
}

// El propietario asignado se descarta para roles que no son Dueño.
func TestProvision_PropietarioSoloParaDuenos(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{users: map[string]*entity.User{}})

	user, err := uc.Provision(context.Background(), usecase.ProvisionInput{
		Name: "Ana", Email: "ana@tienda.pe", Password: "clave123",
		Role: entity.RoleSeller, AssignedOwner: entity.OwnerOne,
	})
	require.NoError(t, err)
	assert.Empty(t, user.AssignedOwner)
}

func TestProvision_EmailRepetido(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	in := usecase.ProvisionInput{
		Name: "Ana", Email: "ana@tienda.pe", Password: "clave123", Role: entity.RoleSeller,
	}
	_, err := uc.Provision(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Provision(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUpdateUser_CambiaRolYEstado(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Name: "Ana", Email: "ana@tienda.pe", Role: entity.RoleSeller, Status: entity.UserActive},
	}}
	uc := usecase.NewUserUseCase(repo)

	rol := entity.RoleAdmin
	estado := entity.UserInactive
	user, err := uc.Update(context.Background(), "u1", usecase.UpdateInput{Role: &rol, Status: &estado})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, entity.UserInactive, user.Status)
}

func TestUpdateUser_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{users: map[string]*entity.User{}})

	rol := entity.RoleAdmin
	_, err := uc.Update(context.Background(), "nadie", usecase.UpdateInput{Role: &rol})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Promociones
// ──────────────────────────────────────────────────────────────────────────────

func TestPromotionSuggest_CarritoQueCumple(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"polo-m": {ID: "polo-m", Name: "Polo Basic", BasePrice: decimal.NewFromInt(40)},
		"polo-l": {ID: "polo-l", Name: "Polo Basic", BasePrice: decimal.NewFromInt(40)},
	}}
	promoRepo := &fakePromoRepo{promos: map[string]*entity.Promotion{
		"promo-1": {
			ID: "promo-1", Name: "3 por 100", Kind: entity.PromoFixedBundle,
			RequiredQty: 3, PromoPrice: decimal.NewFromInt(100),
			ApplicableModels: []string{"Polo Basic"}, Status: entity.PromoActive,
		},
	}}
	uc := usecase.NewPromotionUseCase(promoRepo, productRepo)

	// Dos variantes del mismo modelo suman 3 unidades: la promo califica.
	eligible, err := uc.Suggest(context.Background(), []usecase.SuggestLine{
		{ProductID: "polo-m", Quantity: 2},
		{ProductID: "polo-l", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "promo-1", eligible[0].ID)

	// Con una sola unidad no alcanza.
	eligible, err = uc.Suggest(context.Background(), []usecase.SuggestLine{
		{ProductID: "polo-m", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestPromotionCreate_Valida(t *testing.T) {
	uc := usecase.NewPromotionUseCase(
		&fakePromoRepo{promos: map[string]*entity.Promotion{}},
		&fakeProductRepo{products: map[string]*entity.Product{}},
	)

	_, err := uc.Create(context.Background(), usecase.CreatePromotionInput{
		Name: "3 por 100", Kind: "descuento_raro", RequiredQty: 3,
		PromoPrice: decimal.NewFromInt(100), ApplicableModels: []string{"Polo Basic"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	promo, err := uc.Create(context.Background(), usecase.CreatePromotionInput{
		Name: "3 por 100", Kind: entity.PromoFixedBundle, RequiredQty: 3,
		PromoPrice: decimal.NewFromInt(100), ApplicableModels: []string{"Polo Basic"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PromoActive, promo.Status, "las promociones nacen activas")
}

func TestPromotionList_DuenoVeSoloLasSuyas(t *testing.T) {
	promoRepo := &fakePromoRepo{promos: map[string]*entity.Promotion{
		"p1": {ID: "p1", OwnerID: entity.OwnerOne},
		"p2": {ID: "p2", OwnerID: entity.OwnerTwo},
	}}
	uc := usecase.NewPromotionUseCase(promoRepo, &fakeProductRepo{products: map[string]*entity.Product{}})

	propias, err := uc.List(context.Background(), entity.RoleOwner, entity.OwnerOne)
	require.NoError(t, err)
	require.Len(t, propias, 1)
	assert.Equal(t, "p1", propias[0].ID)

	todas, err := uc.List(context.Background(), entity.RoleAdmin, "")
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_NoTocaStock(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Polo Basic", Size: entity.SizeM, Stock: 7,
			BasePrice: decimal.NewFromInt(40), Owner: entity.OwnerOne,
			CommissionKind: entity.CommissionFlat},
	}}
	uc := usecase.NewProductUseCase(productRepo, &fakeMovementRepo{})

	nuevoPrecio := decimal.NewFromInt(45)
	product, err := uc.Update(context.Background(), "p1", usecase.UpdateProductInput{
		BasePrice: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.True(t, product.BasePrice.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, int64(7), product.Stock, "editar la prenda jamás cambia el stock")
}

func TestProductList_AlcancePorRol(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Owner: entity.OwnerOne},
		"p2": {ID: "p2", Owner: entity.OwnerTwo},
	}}
	uc := usecase.NewProductUseCase(productRepo, &fakeMovementRepo{})

	propios, err := uc.List(context.Background(), entity.RoleOwner, entity.OwnerOne)
	require.NoError(t, err)
	assert.Len(t, propios, 1)

	todos, err := uc.List(context.Background(), entity.RoleSeller, "")
	require.NoError(t, err)
	assert.Len(t, todos, 2, "los vendedores ven el catálogo completo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Panel de control
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_AgregaTotales(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Owner: entity.OwnerOne, Stock: 10, BasePrice: decimal.NewFromInt(40)},
		"p2": {ID: "p2", Owner: entity.OwnerTwo, Stock: 5, BasePrice: decimal.NewFromInt(120)},
	}}

	precioLima := decimal.NewFromInt(40)
	precioProv := decimal.NewFromInt(120)
	comision := decimal.NewFromInt(4)
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		{Type: entity.MovementVenta, Quantity: 2, SalePrice: &precioLima,
			Commission: &comision, CommissionStatus: entity.CommissionPending,
			Seller: "Ana", Location: entity.LocationLima, OwnerID: entity.OwnerOne},
		{Type: entity.MovementVenta, Quantity: 1, SalePrice: &precioProv,
			Commission: &comision, CommissionStatus: entity.CommissionPending,
			Seller: "Luis", Location: entity.LocationProvincia, OwnerID: entity.OwnerTwo},
		{Type: entity.MovementEntrada, Quantity: 10, OwnerID: entity.OwnerOne},
	}}
	uc := usecase.NewReportUseCase(productRepo, movRepo)

	resp, err := uc.Dashboard(context.Background(), entity.RoleAdmin, "")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalProducts)
	assert.Equal(t, int64(15), resp.TotalStock)
	assert.True(t, resp.StockValue.Equal(decimal.NewFromInt(1000)), "10×40 + 5×120 = 1000")
	assert.Equal(t, 2, resp.SalesCount, "las entradas no cuentan como ventas")
	assert.True(t, resp.SalesAmount.Equal(decimal.NewFromInt(200)), "80 + 120 = 200")
	assert.True(t, resp.LimaSales.Equal(decimal.NewFromInt(80)))
	assert.True(t, resp.ProvinceSales.Equal(decimal.NewFromInt(120)))
	assert.True(t, resp.PendingAmount.Equal(decimal.NewFromInt(8)))
	assert.Len(t, resp.PendingDebts, 2)
}

// El Dueño solo ve su catálogo y las ventas de sus prendas.
func TestDashboard_AlcanceDeDueno(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Owner: entity.OwnerOne, Stock: 10, BasePrice: decimal.NewFromInt(40)},
		"p2": {ID: "p2", Owner: entity.OwnerTwo, Stock: 5, BasePrice: decimal.NewFromInt(120)},
	}}
	precio := decimal.NewFromInt(40)
	comision := decimal.NewFromInt(4)
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		{Type: entity.MovementVenta, Quantity: 1, SalePrice: &precio,
			Commission: &comision, CommissionStatus: entity.CommissionPending,
			Seller: "Ana", Location: entity.LocationLima, OwnerID: entity.OwnerOne},
		{Type: entity.MovementVenta, Quantity: 1, SalePrice: &precio,
			Commission: &comision, CommissionStatus: entity.CommissionPending,
			Seller: "Ana", Location: entity.LocationLima, OwnerID: entity.OwnerTwo},
	}}
	uc := usecase.NewReportUseCase(productRepo, movRepo)

	resp, err := uc.Dashboard(context.Background(), entity.RoleOwner, entity.OwnerOne)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalProducts)
	assert.Equal(t, 1, resp.SalesCount, "solo las ventas de sus prendas")
	assert.True(t, resp.SalesAmount.Equal(decimal.NewFromInt(40)))
}

// Una venta histórica sin precio (fila editada a mano en la base) no debe
// tumbar el panel: cuenta como venta pero aporta cero al monto.
func TestDashboard_VentaSinPrecioNoRompeElPanel(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Owner: entity.OwnerOne, Stock: 10, BasePrice: decimal.NewFromInt(40)},
	}}
	precio := decimal.NewFromInt(40)
	comision := decimal.NewFromInt(4)
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		{Type: entity.MovementVenta, Quantity: 2, SalePrice: &precio,
			Commission: &comision, CommissionStatus: entity.CommissionPending,
			Seller: "Ana", Location: entity.LocationLima, OwnerID: entity.OwnerOne},
		{Type: entity.MovementVenta, Quantity: 1, SalePrice: nil,
			Seller: "Luis", Location: entity.LocationLima, OwnerID: entity.OwnerOne},
	}}
	uc := usecase.NewReportUseCase(productRepo, movRepo)

	resp, err := uc.Dashboard(context.Background(), entity.RoleAdmin, "")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SalesCount)
	assert.True(t, resp.SalesAmount.Equal(decimal.NewFromInt(80)), "la venta sin precio suma cero")
	assert.True(t, resp.LimaSales.Equal(decimal.NewFromInt(80)))
}
