// Package batch converts numeral lists supplied as text, one numeral per
// line. Lines that fail stay in the report next to the ones that converted;
// a bad line never aborts the rest of the run.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"numsys-api/internal/radix"
)

// Process converts every non-blank line of src from one radix to the other.
// Line numbers are 1-based and count blank lines, so they match the line
// numbers an editor shows for the same text. The only hard failures are an
// unsupported radix and a reader error.
func Process(src io.Reader, from, to int) (*Report, error) {
	if _, err := radix.Lookup(from); err != nil {
		return nil, err
	}
	if _, err := radix.Lookup(to); err != nil {
		return nil, err
	}

	report := &Report{FromRadix: from, ToRadix: to}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		res := LineResult{Line: line, Input: input}
		conv, err := radix.Convert(input, from, to)
		if err != nil {
			res.Error = err.Error()
			report.Failed++
		} else {
			res.Output = conv.Output
			report.Succeeded++
		}
		report.Lines = append(report.Lines, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: reading input: %w", err)
	}

	return report, nil
}
