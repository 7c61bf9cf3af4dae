// Package excel genera los archivos xlsx de descarga del inventario.
package excel

import (
	"bytes"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/jhoicas/Prendas-api/internal/application/ports"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que InventoryExporter implementa el puerto.
var _ ports.InventoryExporter = (*InventoryExporter)(nil)

const sheetName = "Inventario"

var headers = []string{"ID", "Modelo", "Color", "Talla", "Propietario", "Stock", "Precio", "Valor de Stock"}

// InventoryExporter serializa el catálogo de prendas a xlsx.
type InventoryExporter struct{}

// NewInventoryExporter construye el exportador.
func NewInventoryExporter() *InventoryExporter {
	return &InventoryExporter{}
}

// Export arma una hoja con una fila por prenda y los montos ya redondeados
// a 2 decimales.
func (e *InventoryExporter) Export(products []*entity.Product) ([]byte, error) {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", sheetName)

	for col, header := range headers {
		file.SetCellValue(sheetName, cellRef(col, 1), header)
	}

	for i, p := range products {
		row := i + 2
		file.SetCellValue(sheetName, cellRef(0, row), p.ID)
		file.SetCellValue(sheetName, cellRef(1, row), p.Name)
		file.SetCellValue(sheetName, cellRef(2, row), p.Color)
		file.SetCellValue(sheetName, cellRef(3, row), p.Size)
		file.SetCellValue(sheetName, cellRef(4, row), p.Owner)
		file.SetCellValue(sheetName, cellRef(5, row), p.Stock)
		file.SetCellValue(sheetName, cellRef(6, row), p.BasePrice.Round(2).String())
		file.SetCellValue(sheetName, cellRef(7, row), p.StockValue().Round(2).String())
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribiendo xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// cellRef arma la referencia tipo "A1" para la columna (base 0) y fila (base 1).
func cellRef(col, row int) string {
	name := ""
	col++
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return fmt.Sprintf("%s%d", name, row)
}
