package dto

import "github.com/shopspring/decimal"

// CreatePromotionRequest entrada para crear una promoción.
type CreatePromotionRequest struct {
	Name             string          `json:"nombre"`
	Description      string          `json:"descripcion"`
	Kind             string          `json:"tipo"`
	RequiredQty      int64           `json:"cantidad_requerida"`
	PromoPrice       decimal.Decimal `json:"valor_promo"`
	ApplicableModels []string        `json:"modelos_aplicables"`
	OwnerID          string          `json:"propietario_id"`
	Status           string          `json:"estado"`
}

// PromotionResponse salida de una promoción.
type PromotionResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"nombre"`
	Description      string          `json:"descripcion"`
	Kind             string          `json:"tipo"`
	RequiredQty      int64           `json:"cantidad_requerida"`
	PromoPrice       decimal.Decimal `json:"valor_promo"`
	ApplicableModels []string        `json:"modelos_aplicables"`
	OwnerID          string          `json:"propietario_id"`
	Status           string          `json:"estado"`
}

// PromotionListResponse lista de promociones.
type PromotionListResponse struct {
	Items []PromotionResponse `json:"items"`
}

// SuggestPromotionsRequest carrito para evaluar promociones elegibles.
type SuggestPromotionsRequest struct {
	Lines []SaleLineRequest `json:"items"`
}
