package dto

import "github.com/jhoicas/Prendas-api/internal/domain/entity"

// Mapeos entidad → DTO compartidos por los distintos casos de uso.

// FromProduct arma la respuesta de una prenda.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Size:            p.Size,
		Color:           p.Color,
		Stock:           p.Stock,
		BasePrice:       p.BasePrice,
		Owner:           p.Owner,
		CommissionValue: p.CommissionValue,
		CommissionKind:  p.CommissionKind,
		StockValue:      p.StockValue().Round(2),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromMovement arma la respuesta de un movimiento.
func FromMovement(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:               m.ID,
		ProductID:        m.ProductID,
		Type:             m.Type,
		Quantity:         m.Quantity,
		SalePrice:        m.SalePrice,
		Commission:       m.Commission,
		CommissionStatus: m.CommissionStatus,
		Seller:           m.Seller,
		Location:         m.Location,
		Date:             m.Date,
		Comment:          m.Comment,
		OwnerID:          m.OwnerID,
		PaymentStatus:    m.PaymentStatus,
	}
}

// FromUser arma la respuesta de un usuario (sin hash de password).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		AssignedOwner: u.AssignedOwner,
		RegisteredAt:  u.RegisteredAt,
		Status:        u.Status,
	}
}

// FromPromotion arma la respuesta de una promoción.
func FromPromotion(p *entity.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Kind:             p.Kind,
		RequiredQty:      p.RequiredQty,
		PromoPrice:       p.PromoPrice,
		ApplicableModels: p.ApplicableModels,
		OwnerID:          p.OwnerID,
		Status:           p.Status,
	}
}

// FromCommissionPayment arma la respuesta de un pago de comisiones.
func FromCommissionPayment(p *entity.CommissionPayment) CommissionPaymentResponse {
	return CommissionPaymentResponse{
		ID:     p.ID,
		Seller: p.Seller,
		Amount: p.Amount.Round(2),
		Date:   p.Date,
		Period: p.Period,
	}
}
