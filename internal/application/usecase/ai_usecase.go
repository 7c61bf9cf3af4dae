package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Prendas-api/internal/application/ports"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// aiReportTimeout tope para la llamada al modelo de lenguaje; pasado esto
// el resumen falla y el panel sigue funcionando sin él.
const aiReportTimeout = 10 * time.Second

// aiMovementLimit movimientos recientes que se envían como contexto.
const aiMovementLimit = 200

// AIUseCase genera el resumen ejecutivo del inventario con el servicio LLM.
type AIUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	llm         ports.LLMService
}

// NewAIUseCase construye el caso de uso de resúmenes inteligentes.
func NewAIUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository, llm ports.LLMService) *AIUseCase {
	return &AIUseCase{productRepo: productRepo, movRepo: movRepo, llm: llm}
}

// Summary reúne catálogo y movimientos recientes y pide el informe al
// modelo. El alcance sigue al rol igual que el panel.
func (uc *AIUseCase) Summary(ctx context.Context, role, owner string) (string, error) {
	products, err := scopedProducts(uc.productRepo, role, owner)
	if err != nil {
		return "", fmt.Errorf("listando prendas: %w", err)
	}
	movements, err := uc.movRepo.List(aiMovementLimit, 0)
	if err != nil {
		return "", fmt.Errorf("listando movimientos: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, aiReportTimeout)
	defer cancel()

	summary, err := uc.llm.GenerateInventoryReport(ctx, products, movements)
	if err != nil {
		return "", fmt.Errorf("generando resumen: %w", err)
	}
	return summary, nil
}
