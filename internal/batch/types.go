package batch

// LineResult is the outcome for one non-blank input line. Exactly one of
// Output and Error is set.
type LineResult struct {
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report summarises one batch run.
type Report struct {
	FromRadix int          `json:"from_base"`
	ToRadix   int          `json:"to_base"`
	Lines     []LineResult `json:"lines"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
}
