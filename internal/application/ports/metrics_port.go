package ports

// Resultados de una conversión reportados al recorder.
const (
	OutcomeOK         = "ok"
	OutcomeNonFinite  = "non_finite"  // resultado ±Inf/NaN (ej. 0 L/100km a mpg)
	OutcomeEmptyInput = "empty_input" // texto vacío o no numérico: se muestra 0
	OutcomeNotFound   = "not_found"

	OutcomeInfiniteInput = "infinite_input" // "Infinity" o desbordamiento ("1e400"): se muestra 0
)

// ConversionRecorder define el puerto de salida para métricas de conversión.
// Lo implementa el adaptador de Prometheus; NopRecorder sirve para tests y CLI.
type ConversionRecorder interface {
	ObserveConversion(category, outcome string)
}

// NopRecorder descarta las observaciones.
type NopRecorder struct{}

// ObserveConversion no hace nada.
func (NopRecorder) ObserveConversion(string, string) {}
