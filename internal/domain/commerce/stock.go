package commerce

import "github.com/jhoicas/Prendas-api/internal/domain/entity"

// ApplyStockDelta devuelve el stock resultante de aplicar un movimiento:
// Entrada suma, Salida y Venta restan. No recorta a cero: un stock
// negativo es representable y se acepta (el conteo físico puede ir por
// detrás de las ventas registradas).
func ApplyStockDelta(current int64, movementType string, quantity int64) int64 {
	switch movementType {
	case entity.MovementEntrada:
		return current + quantity
	case entity.MovementSalida, entity.MovementVenta:
		return current - quantity
	}
	return current
}
