package calculator

// CalcRequest is the JSON body for binary operations: two numerals and the
// radix they are written in.
type CalcRequest struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Base int    `json:"base"`
}

// CalcResponse is the JSON response for the binary operation endpoints.
// Result is rendered in the request base; Decimal is the same value in base
// ten for clients that want it without a second conversion call.
type CalcResponse struct {
	Operation string `json:"operation"`
	A         string `json:"a"`
	B         string `json:"b"`
	Base      int    `json:"base"`
	Result    string `json:"result"`
	Decimal   string `json:"decimal"`
}

// EvalRequest is the JSON body for POST /calculator/eval: a key-press
// sequence replayed against a fresh session. Keys are the keypad labels:
// digits valid for the base, "+", "-", "*", "/", "=", "C", "CE" and "back".
type EvalRequest struct {
	Base int      `json:"base"`
	Keys []string `json:"keys"`
}

// KeyResult records the display after one replayed key.
type KeyResult struct {
	Key     string `json:"key"`
	Display string `json:"display"`
	Error   string `json:"error,omitempty"`
}

// PendingOperation surfaces an operation still held when the replay ended.
// Operand is in decimal.
type PendingOperation struct {
	Operator string `json:"operator"`
	Operand  string `json:"operand"`
}

// EvalResponse is the JSON response for POST /calculator/eval.
type EvalResponse struct {
	Base    int               `json:"base"`
	Keys    []KeyResult       `json:"keys"`
	Display string            `json:"display"`
	Pending *PendingOperation `json:"pending,omitempty"`
}
