package convert

import "numsys-api/internal/radix"

// ConvertRequest is the payload for POST /convert.
type ConvertRequest struct {
	Number       string `json:"number"`
	FromBase     int    `json:"from_base"`
	ToBase       int    `json:"to_base"`
	IncludeSteps bool   `json:"include_steps"`
}

// Quick carries the same value rendered in the four everyday bases.
type Quick struct {
	Binary      string `json:"binary"`
	Octal       string `json:"octal"`
	Decimal     string `json:"decimal"`
	Hexadecimal string `json:"hexadecimal"`
}

// ExpansionTerm is one positional term of the digit expansion that turns the
// input numeral into its decimal value.
type ExpansionTerm struct {
	Position   int    `json:"position"`
	Digit      string `json:"digit"`
	DigitValue int    `json:"digit_value"`
	Power      int    `json:"power"`
	Weight     string `json:"weight"`
	Term       string `json:"term"`
}

// DivisionRow is one division of the repeated-division rendering that turns
// the decimal value into the output numeral.
type DivisionRow struct {
	Step      int    `json:"step"`
	Dividend  string `json:"dividend"`
	Quotient  string `json:"quotient"`
	Remainder int    `json:"remainder"`
	Digit     string `json:"digit"`
}

// Steps is the optional worked explanation of a conversion.
type Steps struct {
	ToDecimal   []ExpansionTerm `json:"to_decimal"`
	FromDecimal []DivisionRow   `json:"from_decimal"`
}

// ConvertResponse is returned by POST /convert. Decimal is a string so that
// values beyond 64 bits survive every JSON parser.
type ConvertResponse struct {
	Input    string `json:"input"`
	FromBase int    `json:"from_base"`
	ToBase   int    `json:"to_base"`
	Decimal  string `json:"decimal"`
	Result   string `json:"result"`
	Quick    Quick  `json:"quick"`
	Steps    *Steps `json:"steps,omitempty"`
}

// BasesResponse is returned by GET /bases, ascending by radix.
type BasesResponse struct {
	Bases []radix.System `json:"bases"`
}
