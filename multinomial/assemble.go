// SPDX-License-Identifier: MIT

package multinomial

import "github.com/qcgm1978/tfjs-core/tensor"

// assemble wraps the dense draw buffer into the output tensor.
// A promoted rank-1 input is de-promoted to shape [n]; a rank-2 input keeps
// shape [rows, n] with row r at buf[r*n:(r+1)*n].
func assemble(buf []int32, inputRank, rows, n int) (*tensor.Tensor, error) {
	if inputRank == 1 {
		return tensor.WrapInt32(buf, n)
	}

	return tensor.WrapInt32(buf, rows, n)
}

// splitRows returns per-row views into buf without copying.
func splitRows(buf []int32, rows, n int) [][]int32 {
	out := make([][]int32, rows)
	for r := range out {
		out[r] = buf[r*n : (r+1)*n : (r+1)*n]
	}

	return out
}
