package converter

// ConvertRequest asks for a unit conversion.
type ConvertRequest struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Value    float64 `json:"value"`
}

// ConvertResponse carries the converted quantity.
type ConvertResponse struct {
	Category  string  `json:"category,omitempty"`
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Result    float64 `json:"result,omitempty"`
	Formatted string  `json:"formatted,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// CategoriesRequest asks for the unit catalog.
type CategoriesRequest struct{}

// CategoryInfo describes one conversion category.
type CategoryInfo struct {
	Name     string `json:"name"`
	BaseUnit string `json:"base_unit"`
	Units    []Unit `json:"units"`
}

// CategoriesResponse carries the unit catalog.
type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}
