// SPDX-License-Identifier: MIT

package hopping

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tbribbon/matrix"
)

// Displacement is an in-plane lattice vector (DX, DY) in units of the
// primitive vectors. DX runs along the periodic ribbon direction, DY along
// the finite one.
type Displacement struct {
	DX, DY int
}

// Model is an immutable set of hopping blocks.
// Block(d) is the orbitals×orbitals amplitude matrix coupling a cell to the
// cell displaced by d.
type Model struct {
	orbitals     int
	degeneracies []int
	blocks       map[Displacement]*matrix.CDense
	order        []Displacement // sorted keys, fixed at construction
}

// NewModel validates and copies blocks into an immutable Model.
//
// Errors: ErrInvalidModel when orbitals < 1, a block is nil or a block is not
// orbitals×orbitals.
func NewModel(orbitals int, blocks map[Displacement]*matrix.CDense) (*Model, error) {
	if orbitals < 1 {
		return nil, fmt.Errorf("orbitals=%d: %w", orbitals, ErrInvalidModel)
	}
	own := make(map[Displacement]*matrix.CDense, len(blocks))
	for d, blk := range blocks {
		if blk == nil {
			return nil, fmt.Errorf("block %v is nil: %w", d, ErrInvalidModel)
		}
		if blk.Rows() != orbitals || blk.Cols() != orbitals {
			return nil, fmt.Errorf("block %v is %dx%d, want %dx%d: %w",
				d, blk.Rows(), blk.Cols(), orbitals, orbitals, ErrInvalidModel)
		}
		own[d] = blk.Clone()
	}

	return newModel(orbitals, nil, own), nil
}

// newModel takes ownership of blocks and degeneracies without copying.
func newModel(orbitals int, degeneracies []int, blocks map[Displacement]*matrix.CDense) *Model {
	order := make([]Displacement, 0, len(blocks))
	for d := range blocks {
		order = append(order, d)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].DX != order[j].DX {
			return order[i].DX < order[j].DX
		}
		return order[i].DY < order[j].DY
	})

	return &Model{orbitals: orbitals, degeneracies: degeneracies, blocks: blocks, order: order}
}

// Orbitals returns the number of orbitals per unit cell.
func (m *Model) Orbitals() int { return m.orbitals }

// Len returns the number of stored displacements.
func (m *Model) Len() int { return len(m.order) }

// Displacements returns the stored keys sorted by (DX, DY).
func (m *Model) Displacements() []Displacement {
	return append([]Displacement(nil), m.order...)
}

// Block returns the hopping block for d.
// The returned matrix is shared with the model and must be treated as read-only.
func (m *Model) Block(d Displacement) (*matrix.CDense, bool) {
	blk, ok := m.blocks[d]
	return blk, ok
}

// Degeneracies returns a copy of the per-record weights read from the file.
// They are informational only; the model never applies them.
func (m *Model) Degeneracies() []int {
	return append([]int(nil), m.degeneracies...)
}
