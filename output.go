package testgen

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

type suiteJSON struct {
	Seed         int64   `json:"seed"`
	MaxArraySize int     `json:"max_array_size"`
	MaxValue     int     `json:"max_value"`
	Cases        [][]int `json:"cases"`
}

// WriteText writes the suite in the plain stress-test input layout: the number
// of cases, then for every case its length on one line and its values on the next.
func (s Suite) WriteText(w io.Writer, trailingSpace bool) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, len(s.Cases))
	for _, tc := range s.Cases {
		_, _ = fmt.Fprintln(bw, len(tc))
		writeValues(bw, tc, trailingSpace)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write test suite: %w", err)
	}
	return nil
}

// bufio.Writer keeps the first error, so Flush reports any failed write above.
func writeValues(bw *bufio.Writer, values []int, trailingSpace bool) {
	buf := make([]byte, 0, 8)
	for i, v := range values {
		if i > 0 && !trailingSpace {
			_ = bw.WriteByte(' ')
		}
		_, _ = bw.Write(strconv.AppendInt(buf[:0], int64(v), 10))
		if trailingSpace {
			_ = bw.WriteByte(' ')
		}
	}
	_ = bw.WriteByte('\n')
}

// WriteJSON writes the suite together with the seed and drawn ceilings.
func (s Suite) WriteJSON(w io.Writer) error {
	doc := suiteJSON{
		Seed:         s.Seed,
		MaxArraySize: s.MaxArraySize,
		MaxValue:     s.MaxValue,
		Cases:        make([][]int, len(s.Cases)),
	}
	for i, tc := range s.Cases {
		if tc == nil {
			tc = TestCase{}
		}
		doc.Cases[i] = tc
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode test suite: %w", err)
	}
	return nil
}
