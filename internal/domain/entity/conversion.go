package entity

import (
	"fmt"
	"math"
)

// ConversionKind identifica la ley que relaciona una unidad con la unidad base de su categoría.
type ConversionKind string

const (
	KindLinear     ConversionKind = "linear"     // base = (v + Offset) * Scale / Divisor
	KindReciprocal ConversionKind = "reciprocal" // base = Constant / v (autoinversa)
)

// Conversion es la estrategia de conversión de una unidad hacia/desde la base.
// Es un valor de datos (serializable) en lugar de un par de funciones.
//
// Lineal: ToBase(v) = (v + Offset) * Scale / Divisor, FromBase(v) = v * Divisor / Scale - Offset.
// Recíproca: ToBase(v) = FromBase(v) = Constant / v.
type Conversion struct {
	Kind     ConversionKind `json:"kind" yaml:"kind"`
	Scale    float64        `json:"scale,omitempty" yaml:"scale,omitempty"`
	Divisor  float64        `json:"divisor,omitempty" yaml:"divisor,omitempty"` // 0 se interpreta como 1
	Offset   float64        `json:"offset,omitempty" yaml:"offset,omitempty"`
	Constant float64        `json:"constant,omitempty" yaml:"constant,omitempty"`
}

// Identity es la conversión de la unidad base.
func Identity() Conversion {
	return Conversion{Kind: KindLinear, Scale: 1, Divisor: 1}
}

// Times: 1 unidad = k unidades base.
func Times(k float64) Conversion {
	return Conversion{Kind: KindLinear, Scale: k, Divisor: 1}
}

// Per: k unidades = 1 unidad base (ej. gramo respecto a kilogramo, k = 1000).
func Per(k float64) Conversion {
	return Conversion{Kind: KindLinear, Scale: 1, Divisor: k}
}

// Affine: base = (v + offset) * n / d. Cubre escalas con cero desplazado (temperatura).
func Affine(offset, n, d float64) Conversion {
	return Conversion{Kind: KindLinear, Scale: n, Divisor: d, Offset: offset}
}

// Reciprocal: base = c / v, con la misma fórmula en ambos sentidos.
func Reciprocal(c float64) Conversion {
	return Conversion{Kind: KindReciprocal, Constant: c}
}

func (c Conversion) divisor() float64 {
	if c.Divisor == 0 {
		return 1
	}
	return c.Divisor
}

// ToBase lleva un valor expresado en esta unidad a la unidad base.
// Nunca hace panic: divisiones por cero producen ±Inf o NaN.
func (c Conversion) ToBase(v float64) float64 {
	switch c.Kind {
	case KindReciprocal:
		return c.Constant / v
	default:
		return (v + c.Offset) * c.Scale / c.divisor()
	}
}

// FromBase lleva un valor en unidad base a esta unidad.
func (c Conversion) FromBase(v float64) float64 {
	switch c.Kind {
	case KindReciprocal:
		return c.Constant / v
	default:
		return v*c.divisor()/c.Scale - c.Offset
	}
}

// IsIdentity indica si la conversión no altera el valor (requisito de la unidad base).
func (c Conversion) IsIdentity() bool {
	return c.Kind == KindLinear && c.Scale == c.divisor() && c.Offset == 0
}

// Validate verifica que los parámetros de la estrategia sean utilizables.
func (c Conversion) Validate() error {
	switch c.Kind {
	case KindLinear:
		if !isFinite(c.Scale) || c.Scale == 0 {
			return fmt.Errorf("scale inválido: %v", c.Scale)
		}
		if !isFinite(c.Divisor) {
			return fmt.Errorf("divisor inválido: %v", c.Divisor)
		}
		if !isFinite(c.Offset) {
			return fmt.Errorf("offset inválido: %v", c.Offset)
		}
	case KindReciprocal:
		if !isFinite(c.Constant) || c.Constant == 0 {
			return fmt.Errorf("constante recíproca inválida: %v", c.Constant)
		}
	default:
		return fmt.Errorf("tipo de conversión desconocido: %q", c.Kind)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
