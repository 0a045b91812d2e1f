package standard

// EvaluateRequest asks for an expression evaluation.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse carries the outcome of an evaluation. Error holds the
// user-facing message for invalid expressions.
type EvaluateResponse struct {
	Expression string  `json:"expression,omitempty"`
	Result     string  `json:"result,omitempty"`
	Value      float64 `json:"value,omitempty"`
	Error      string  `json:"error,omitempty"`
}
