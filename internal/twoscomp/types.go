package twoscomp

// EncodeRequest is the payload for POST /twos-complement. Value is a decimal
// string so 64-bit extremes survive every JSON parser.
type EncodeRequest struct {
	Value string `json:"value"`
	Bits  int    `json:"bits"`
}

// DecodeRequest is the payload for POST /twos-complement/decode.
type DecodeRequest struct {
	Bits  string `json:"bits"`
	Width int    `json:"width"`
}

// DecodeResponse is returned by POST /twos-complement/decode.
type DecodeResponse struct {
	Bits     string `json:"bits"`
	BitWidth int    `json:"bit_width"`
	Value    string `json:"value"`
}
