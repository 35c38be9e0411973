// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// cdenseErrorf wraps an underlying error with CDense method context.
func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// CDense is a row-major matrix of complex128 values.
// It holds hopping blocks and assembled ribbon Hamiltonians.
type CDense struct {
	r, c     int          // number of rows and columns
	data     []complex128 // flat backing storage, length == r*c
	validate bool         // reject NaN/Inf components on Set
}

// NewCDense creates an r×c complex matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewCDense(rows, cols int, opts ...Option) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols), validate: o.validateNaNInf}, nil
}

// NewCDenseFrom wraps a copy of data (row-major, length rows*cols).
func NewCDenseFrom(rows, cols int, data []complex128, opts ...Option) (*CDense, error) {
	m, err := NewCDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewCDenseFrom: len(data)=%d want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	if m.validate {
		for _, z := range data {
			if isNonFiniteComplex(z) {
				return nil, fmt.Errorf("NewCDenseFrom: %w", ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *CDense) Cols() int { return m.c }

func (m *CDense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, cdenseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *CDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns z at (row, col).
// Returns ErrNaNInf for a non-finite component when validation is enabled.
func (m *CDense) Set(row, col int, z complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if m.validate && isNonFiniteComplex(z) {
		return cdenseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = z

	return nil
}

// Zero resets every element to 0 while keeping the backing storage.
func (m *CDense) Zero() {
	clear(m.data)
}

// AddBlock accumulates scale*blk into the sub-matrix whose top-left corner is
// (row0, col0): m[row0+i, col0+j] += scale * blk[i, j].
//
// Behavior highlights:
//   - Accumulates; never overwrites. Two blocks landing on the same cells sum.
//   - Bounds are validated once up front; the inner loop is a flat walk.
//
// Errors:
//   - ErrNilMatrix when blk is nil.
//   - ErrOutOfRange when the block does not fit at (row0, col0).
//
// Complexity: O(blk.r * blk.c).
func (m *CDense) AddBlock(row0, col0 int, blk *CDense, scale complex128) error {
	if blk == nil {
		return cdenseErrorf("AddBlock", row0, col0, ErrNilMatrix)
	}
	if row0 < 0 || col0 < 0 || row0+blk.r > m.r || col0+blk.c > m.c {
		return cdenseErrorf("AddBlock", row0, col0, ErrOutOfRange)
	}
	var i, j, dst, src int
	for i = 0; i < blk.r; i++ {
		dst = (row0+i)*m.c + col0
		src = i * blk.c
		for j = 0; j < blk.c; j++ {
			m.data[dst+j] += scale * blk.data[src+j]
		}
	}

	return nil
}

// Block returns a copy of the rows×cols sub-matrix starting at (row0, col0).
func (m *CDense) Block(row0, col0, rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if row0 < 0 || col0 < 0 || row0+rows > m.r || col0+cols > m.c {
		return nil, cdenseErrorf("Block", row0, col0, ErrOutOfRange)
	}
	out := &CDense{r: rows, c: cols, data: make([]complex128, rows*cols), validate: m.validate}
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[(row0+i)*m.c+col0:(row0+i)*m.c+col0+cols])
	}

	return out, nil
}

// ConjTranspose returns a new matrix m† with m†[j,i] = conj(m[i,j]).
func (m *CDense) ConjTranspose() *CDense {
	out := &CDense{r: m.c, c: m.r, data: make([]complex128, len(m.data)), validate: m.validate}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			z := m.data[i*m.c+j]
			out.data[j*m.r+i] = complex(real(z), -imag(z))
		}
	}

	return out
}

// Clone returns a deep copy of the matrix.
func (m *CDense) Clone() *CDense {
	copyData := make([]complex128, len(m.data))
	copy(copyData, m.data)

	return &CDense{r: m.r, c: m.c, data: copyData, validate: m.validate}
}

// RawData returns a copy of the row-major backing storage.
func (m *CDense) RawData() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer for easy debugging.
func (m *CDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
