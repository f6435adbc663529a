package ieee754

// EncodeRequest is the payload for POST /ieee754/encode. Value is a decimal
// string so callers are not at the mercy of their JSON library's float
// handling.
type EncodeRequest struct {
	Value  string `json:"value"`
	Format string `json:"format"`
}

// EncodeResponse is the full bit anatomy of one encoded value. Value renders
// as a string because infinities have no JSON number form.
type EncodeResponse struct {
	Format           string `json:"format"`
	Value            string `json:"value"`
	Bits             string `json:"bits"`
	SignBit          int    `json:"sign_bit"`
	ExponentBits     string `json:"exponent_bits"`
	MantissaBits     string `json:"mantissa_bits"`
	BiasedExponent   int    `json:"biased_exponent"`
	UnbiasedExponent int    `json:"unbiased_exponent"`
	Mantissa         string `json:"mantissa"`
	Hex              string `json:"hex"`
	Formula          string `json:"formula"`
}

// DecodeRequest is the payload for POST /ieee754/decode. The three bit
// fields must exactly fill the chosen format.
type DecodeRequest struct {
	Format       string `json:"format"`
	SignBit      int    `json:"sign_bit"`
	ExponentBits string `json:"exponent_bits"`
	MantissaBits string `json:"mantissa_bits"`
}

// DecodeResponse is returned by POST /ieee754/decode.
type DecodeResponse struct {
	Format string `json:"format"`
	Value  string `json:"value"`
}
