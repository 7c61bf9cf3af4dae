// Package ports define los puertos de salida de la capa de aplicación hacia
// servicios de infraestructura que no son persistencia.
package ports

import (
	"context"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// LLMService genera el resumen ejecutivo del inventario a partir del
// catálogo y el historial reciente de movimientos.
type LLMService interface {
	GenerateInventoryReport(ctx context.Context, products []*entity.Product, movements []*entity.Movement) (string, error)
}

// InventoryExporter serializa el catálogo a un archivo descargable (xlsx).
type InventoryExporter interface {
	Export(products []*entity.Product) ([]byte, error)
}
