package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Prendas-api/internal/application/ports"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// ExportUseCase genera la descarga del inventario en xlsx, con el mismo
// alcance que ve el rol que la pide.
type ExportUseCase struct {
	productRepo repository.ProductRepository
	exporter    ports.InventoryExporter
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(productRepo repository.ProductRepository, exporter ports.InventoryExporter) *ExportUseCase {
	return &ExportUseCase{productRepo: productRepo, exporter: exporter}
}

// ExportResult archivo generado y su nombre sugerido de descarga.
type ExportResult struct {
	Filename string
	Content  []byte
}

// Export arma el xlsx del inventario visible para el rol. El Dueño exporta
// solo sus prendas; el resto exporta el catálogo global.
func (uc *ExportUseCase) Export(ctx context.Context, role, owner string) (*ExportResult, error) {
	var (
		products []*entity.Product
		err      error
		prefix   = "Inventario_Global_"
	)
	if role == entity.RoleOwner && owner != "" {
		products, err = uc.productRepo.ListByOwner(owner)
		prefix = "Inventario_" + sanitizeForFilename(owner) + "_"
	} else {
		products, err = uc.productRepo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("listando prendas para exportar: %w", err)
	}

	content, err := uc.exporter.Export(products)
	if err != nil {
		return nil, fmt.Errorf("generando xlsx: %w", err)
	}

	return &ExportResult{
		Filename: prefix + time.Now().Format("2006-01-02") + ".xlsx",
		Content:  content,
	}, nil
}

func sanitizeForFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, s)
}
