package scientific

// EvaluateRequest asks for a scientific function evaluation.
type EvaluateRequest struct {
	Function string  `json:"function"`
	Value    float64 `json:"value"`
}

// EvaluateResponse carries the outcome of an evaluation. Error is set for
// domain and parse failures; it is a user-facing message, not a transport
// error.
type EvaluateResponse struct {
	Expression string  `json:"expression,omitempty"`
	Result     string  `json:"result,omitempty"`
	Value      float64 `json:"value,omitempty"`
	Error      string  `json:"error,omitempty"`
}
