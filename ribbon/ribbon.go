// SPDX-License-Identifier: MIT

package ribbon

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/tbribbon/hopping"
	"github.com/katalvlaran/tbribbon/matrix"
)

var (
	// ErrNilModel indicates that a nil *hopping.Model was passed in.
	ErrNilModel = errors.New("ribbon: model is nil")

	// ErrInvalidWidth indicates a ribbon width below one cell.
	ErrInvalidWidth = errors.New("ribbon: width must be >= 1")

	// ErrBufferShape indicates a destination buffer whose shape does not
	// match the assembler's dimension.
	ErrBufferShape = errors.New("ribbon: buffer shape mismatch")
)

// term is one stored hopping block with its displacement, resolved once.
type term struct {
	dx, dy int
	block  *matrix.CDense
}

// Assembler builds ribbon Hamiltonians of a fixed width for one model.
// It is immutable after construction and safe for concurrent use as long as
// every goroutine assembles into its own buffer.
type Assembler struct {
	width    int
	orbitals int
	dim      int
	terms    []term // sorted by (dx, dy) for a fixed summation order
}

// Dimension returns width·orbitals, the side of the ribbon matrix.
func Dimension(m *hopping.Model, width int) int {
	if m == nil || width < 1 {
		return 0
	}

	return width * m.Orbitals()
}

// NewAssembler validates inputs and snapshots the model's blocks.
//
// Errors: ErrNilModel, ErrInvalidWidth.
func NewAssembler(m *hopping.Model, width int) (*Assembler, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if width < 1 {
		return nil, fmt.Errorf("width=%d: %w", width, ErrInvalidWidth)
	}
	disp := m.Displacements()
	terms := make([]term, 0, len(disp))
	for _, d := range disp {
		blk, _ := m.Block(d)
		terms = append(terms, term{dx: d.DX, dy: d.DY, block: blk})
	}

	return &Assembler{width: width, orbitals: m.Orbitals(), dim: width * m.Orbitals(), terms: terms}, nil
}

// Width returns the number of stacked cells.
func (a *Assembler) Width() int { return a.width }

// Dim returns the side of the assembled matrix.
func (a *Assembler) Dim() int { return a.dim }

// NewBuffer allocates a zeroed dim×dim matrix suitable for AssembleInto.
// NaN/Inf validation is off: assembly only accumulates finite model blocks.
func (a *Assembler) NewBuffer() (*matrix.CDense, error) {
	return matrix.NewCDense(a.dim, a.dim, matrix.WithNoValidateNaNInf())
}

// Assemble returns a freshly allocated ribbon Hamiltonian at momentum kx
// (radians along the periodic direction).
func (a *Assembler) Assemble(kx float64) (*matrix.CDense, error) {
	h, err := a.NewBuffer()
	if err != nil {
		return nil, fmt.Errorf("ribbon: assemble: %w", err)
	}
	if err = a.AssembleInto(h, kx); err != nil {
		return nil, err
	}

	return h, nil
}

// AssembleInto zeroes dst and fills it with the Hamiltonian at kx.
//
// Implementation:
//   - Stage 1: check dst is dim×dim, then zero it.
//   - Stage 2: for each cell y and each term (dx, dy, M), accumulate
//     M·exp(i·kx·dx) into block (y, y+dy) when 0 <= y+dy < width.
//
// Errors: ErrBufferShape, ErrOutOfRange from matrix (never expected).
// Complexity: O(width · terms · orbitals²).
func (a *Assembler) AssembleInto(dst *matrix.CDense, kx float64) error {
	if dst == nil || dst.Rows() != a.dim || dst.Cols() != a.dim {
		return ErrBufferShape
	}
	dst.Zero()

	// one phase per term; it does not depend on y
	phases := make([]complex128, len(a.terms))
	for i, tm := range a.terms {
		phases[i] = cmplx.Exp(complex(0, kx*float64(tm.dx)))
	}

	var y, target int
	for y = 0; y < a.width; y++ {
		for i, tm := range a.terms {
			target = y + tm.dy
			if target < 0 || target >= a.width {
				continue // open boundary
			}
			if err := dst.AddBlock(y*a.orbitals, target*a.orbitals, tm.block, phases[i]); err != nil {
				return fmt.Errorf("ribbon: cell %d -> %d: %w", y, target, err)
			}
		}
	}

	return nil
}

// Assemble is a one-shot helper: NewAssembler(m, width).Assemble(kx).
func Assemble(m *hopping.Model, width int, kx float64) (*matrix.CDense, error) {
	a, err := NewAssembler(m, width)
	if err != nil {
		return nil, err
	}

	return a.Assemble(kx)
}
