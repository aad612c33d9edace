package conversion

import (
	"math"

	"github.com/shopspring/decimal"
)

// DisplayPrecision cantidad de decimales del resultado presentado.
const DisplayPrecision int32 = 6

// Round6 redondea a 6 decimales para presentación (ver RoundTo).
func Round6(v float64) float64 {
	return RoundTo(v, DisplayPrecision)
}

// RoundTo redondea v a places decimales (mitad lejos de cero) usando aritmética decimal,
// de modo que 1609.34 sale exacto y no 1609.3400000000001.
// Los valores no finitos se devuelven sin cambios y -0 se normaliza a 0.
func RoundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	if f == 0 {
		return 0
	}
	return f
}
