package programmer

// ConvertBaseRequest asks for a base conversion of an integer literal.
type ConvertBaseRequest struct {
	Value    string `json:"value"`
	To       string `json:"to"`
	WordSize int    `json:"word_size,omitempty"`
}

// ConvertBaseResponse carries the converted representation.
type ConvertBaseResponse struct {
	Input    string `json:"input,omitempty"`
	Decimal  int64  `json:"decimal,omitempty"`
	Result   string `json:"result,omitempty"`
	WordSize int    `json:"word_size,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BitwiseRequest asks for a bitwise operation.
type BitwiseRequest struct {
	Op       string `json:"op"`
	A        string `json:"a"`
	B        string `json:"b,omitempty"`
	WordSize int    `json:"word_size,omitempty"`
}

// BitwiseResponse carries the result of a bitwise operation in all bases.
type BitwiseResponse struct {
	Decimal  int64  `json:"decimal,omitempty"`
	Hex      string `json:"hex,omitempty"`
	Binary   string `json:"binary,omitempty"`
	Octal    string `json:"octal,omitempty"`
	WordSize int    `json:"word_size,omitempty"`
	Error    string `json:"error,omitempty"`
}
