package bitwise

// ComputeRequest is the payload for POST /bitwise. Operands are decimal
// strings of any length.
type ComputeRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// ComputeResponse carries both operands and every computed result, each
// rendered in decimal, binary and hex.
type ComputeResponse struct {
	A           Rendering `json:"a"`
	B           Rendering `json:"b"`
	And         Rendering `json:"and"`
	Or          Rendering `json:"or"`
	Xor         Rendering `json:"xor"`
	NotA        Rendering `json:"not_a"`
	NotB        Rendering `json:"not_b"`
	ShiftLeft1  Rendering `json:"shift_left_1"`
	ShiftRight1 Rendering `json:"shift_right_1"`
	ShiftLeft2  Rendering `json:"shift_left_2"`
	ShiftRight2 Rendering `json:"shift_right_2"`
}
