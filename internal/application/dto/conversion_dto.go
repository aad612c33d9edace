package dto

// ConvertRequest entrada para convertir un valor. Value es el texto tal cual lo escribió el usuario.
type ConvertRequest struct {
	Category string `json:"category" query:"category"`
	From     string `json:"from" query:"from"`
	To       string `json:"to" query:"to"`
	Value    string `json:"value" query:"value"`
}

// ConvertResponse resultado de una conversión.
// Result es null cuando el valor no es finito (JSON no admite Inf/NaN); Display siempre está presente.
type ConvertResponse struct {
	Category string   `json:"category"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Input    string   `json:"input"`
	Result   *float64 `json:"result"`
	Display  string   `json:"display"`
	Finite   bool     `json:"finite"`
}

// SwapRequest entrada para intercambiar unidades; con Category y Value no vacíos se reconvierte.
type SwapRequest struct {
	Category string `json:"category"`
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
}

// SwapResponse par intercambiado y, opcionalmente, la nueva conversión.
type SwapResponse struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	Conversion *ConvertResponse `json:"conversion,omitempty"`
}
