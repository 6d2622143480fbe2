// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"

	"github.com/qcgm1978/tfjs-core/tensor"
)

// errNoInput is returned when stdin is an interactive terminal.
var errNoInput = errors.New("no input: pass a file or pipe JSON on stdin")

// openInput returns stdin for "-" and the named file otherwise.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return nil, nil, errNoInput
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// readProbs decodes a JSON array of numbers ([K]) or an array of equal-length
// arrays ([B,K]) into a Float64 tensor.
func readProbs(r io.Reader) (*tensor.Tensor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)

	var row []float64
	if err := json.Unmarshal(raw, &row); err == nil {
		return tensor.New(row, len(row))
	}

	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("input must be a JSON array of numbers or of number arrays: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty batch: %w", tensor.ErrInvalidDimensions)
	}
	k := len(rows[0])
	flat := make([]float64, 0, len(rows)*k)
	for i, r := range rows {
		if len(r) != k {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(r), k, tensor.ErrSizeMismatch)
		}
		flat = append(flat, r...)
	}
	return tensor.New(flat, len(rows), k)
}

type samplesJSON struct {
	DType   string      `json:"dtype"`
	Shape   []int       `json:"shape"`
	Samples interface{} `json:"samples"`
}

// writeSamples encodes an Int32 tensor; rank-2 output is nested per row.
// pretty selects indented JSON, colorized unless color.NoColor is set.
func writeSamples(w io.Writer, out *tensor.Tensor, pretty bool) error {
	draws, err := out.Int32s()
	if err != nil {
		return err
	}
	shape := out.Shape()

	doc := samplesJSON{DType: out.DType().String(), Shape: shape, Samples: draws}
	if len(shape) == 2 {
		rows := make([][]int32, shape[0])
		for r := range rows {
			rows[r] = draws[r*shape[1] : (r+1)*shape[1]]
		}
		doc.Samples = rows
	}

	if pretty {
		b, err := prettyJSON(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	return json.NewEncoder(w).Encode(doc)
}

func prettyJSON(v interface{}) ([]byte, error) {
	if color.NoColor {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}
