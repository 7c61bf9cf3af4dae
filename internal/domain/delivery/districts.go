// Package delivery expone la tarifa de reparto por distrito de Lima y las
// agencias de envío a provincia. La tabla es dato de configuración del
// negocio, no lógica: los valores son una superficie de compatibilidad y se
// reproducen literalmente.
package delivery

import "github.com/shopspring/decimal"

// District es un distrito de Lima con su tarifa fija de delivery y la zona
// comercial a la que pertenece.
type District struct {
	Name string
	Fee  int64
	Zone string
}

// ProvinceAgencies son las agencias de envío a provincia ofrecidas al
// cerrar la venta; "Otro" habilita un nombre libre.
var ProvinceAgencies = []string{"Shalom", "Olva", "Flores", "Marvisur", "Otro"}

var districts = []District{
	// ZONA NORTE
	{Name: "Independencia", Fee: 10, Zone: "Norte"},
	{Name: "SMP I", Fee: 10, Zone: "Norte"},
	{Name: "SMP II (Canta Callao)", Fee: 11, Zone: "Norte"},
	{Name: "Los Olivos", Fee: 10, Zone: "Norte"},
	{Name: "Comas", Fee: 10, Zone: "Norte"},
	{Name: "Puente Piedra", Fee: 13, Zone: "Norte"},
	{Name: "Carabayllo", Fee: 13, Zone: "Norte"},
	// ZONA CENTRO
	{Name: "Cercado", Fee: 10, Zone: "Centro"},
	{Name: "Breña", Fee: 10, Zone: "Centro"},
	{Name: "La Victoria", Fee: 10, Zone: "Centro"},
	{Name: "Rimac", Fee: 10, Zone: "Centro"},
	{Name: "Lince", Fee: 10, Zone: "Centro"},
	{Name: "Jesus Maria", Fee: 10, Zone: "Centro"},
	{Name: "Pueblo Libre", Fee: 10, Zone: "Centro"},
	{Name: "Magdalena", Fee: 10, Zone: "Centro"},
	{Name: "San Miguel", Fee: 10, Zone: "Centro"},
	{Name: "San Isidro", Fee: 10, Zone: "Centro"},
	{Name: "Miraflores", Fee: 10, Zone: "Centro"},
	{Name: "Surquillo", Fee: 10, Zone: "Centro"},
	{Name: "San Borja", Fee: 10, Zone: "Centro"},
	// ZONA SUR
	{Name: "Surco", Fee: 10, Zone: "Sur"},
	{Name: "Barranco", Fee: 10, Zone: "Sur"},
	{Name: "Chorrillos", Fee: 13, Zone: "Sur"},
	{Name: "SJM", Fee: 13, Zone: "Sur"},
	{Name: "VES", Fee: 13, Zone: "Sur"},
	{Name: "VMT", Fee: 13, Zone: "Sur"},
	// ZONA PROV. CALLAO
	{Name: "Bellavista", Fee: 10, Zone: "Callao"},
	{Name: "Carmen de la Legua", Fee: 10, Zone: "Callao"},
	{Name: "La Perla", Fee: 10, Zone: "Callao"},
	{Name: "Callao Oeste", Fee: 10, Zone: "Callao"},
	{Name: "Callao Norte", Fee: 10, Zone: "Callao"},
	{Name: "La Punta", Fee: 13, Zone: "Callao"},
	{Name: "Ventanilla", Fee: 13, Zone: "Callao"},
	// ZONA ESTE
	{Name: "El Agustino", Fee: 12, Zone: "Este"},
	{Name: "San Luis", Fee: 10, Zone: "Este"},
	{Name: "Santa Anita", Fee: 10, Zone: "Este"},
	{Name: "SJL I", Fee: 10, Zone: "Este"},
	{Name: "SJL II", Fee: 13, Zone: "Este"},
	{Name: "La Molina", Fee: 13, Zone: "Este"},
	{Name: "Ate Salamanca", Fee: 10, Zone: "Este"},
	{Name: "Ate Vitarte", Fee: 13, Zone: "Este"},
	{Name: "Ate Santa Clara", Fee: 20, Zone: "Este"},
}

// Districts devuelve la tabla completa (copia, para que el caller no la mute).
func Districts() []District {
	out := make([]District, len(districts))
	copy(out, districts)
	return out
}

// FeeFor devuelve la tarifa de delivery del distrito. Un distrito
// desconocido vale 0; nunca es un error.
func FeeFor(name string) decimal.Decimal {
	for _, d := range districts {
		if d.Name == name {
			return decimal.NewFromInt(d.Fee)
		}
	}
	return decimal.Zero
}
