// Copyright 2025 plotcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package graph holds the optional all-pairs-shortest-path machinery: a
// dense masked distance matrix, a small vertex/edge iteration abstraction,
// and a SIMD-vectorized Floyd-Warshall relaxation. None of this sits on the
// critical screen -> optimize path; it exists for hosts that want all-pairs
// distances (e.g. a rural-postman solver) ahead of nearest-neighbour.
package graph

import (
	"errors"

	"github.com/ravlan/plotcore/lanes"
	"github.com/ravlan/plotcore/pack"
)

// ErrNonSquare is returned when a DistanceMatrix is asked to hold a size
// that cannot back a size x size flat buffer.
var ErrNonSquare = errors.New("graph: matrix size must be positive")

// DistanceMatrix is a dense size x size weight table stored row-major in a
// flat buffer (index = from*size + to), with masked get/set over SIMD edge
// packs. Out-of-bounds lanes are masked off on both read and write, the same
// bounds-as-a-mask discipline the rest of this module follows.
type DistanceMatrix[V lanes.Integers, W lanes.Lanes] struct {
	weights []W
	size    int
}

// NewDistanceMatrix allocates a size x size matrix with every weight set to
// zero.
func NewDistanceMatrix[V lanes.Integers, W lanes.Lanes](size int) (*DistanceMatrix[V, W], error) {
	if size <= 0 {
		return nil, ErrNonSquare
	}
	return &DistanceMatrix[V, W]{
		weights: make([]W, size*size),
		size:    size,
	}, nil
}

// Extent returns the matrix's vertex count.
func (m *DistanceMatrix[V, W]) Extent() int {
	return m.size
}

// Get reads the weight of every lane of edges, masked by both the caller's
// mask and by each lane's own bounds. Out-of-range lanes read as the zero
// value of W and come back with their mask bit cleared.
func (m *DistanceMatrix[V, W]) Get(edges pack.EdgePack[V], mask lanes.Mask[W]) (lanes.Vec[W], lanes.Mask[W]) {
	from := edges.From.Data()
	to := edges.To.Data()
	n := min(len(from), len(to))

	result := make([]W, n)
	validBits := make([]bool, n)
	for i := 0; i < n; i++ {
		if i < mask.NumLanes() && !mask.GetBit(i) {
			continue
		}
		idx, ok := m.offset(from[i], to[i])
		if !ok {
			continue
		}
		result[i] = m.weights[idx]
		validBits[i] = true
	}

	return lanes.Load(result), boolsToMaskW[W](validBits)
}

// Set writes the weight of every lane of edges whose combined caller mask
// and bounds check succeed; out-of-range or inactive lanes are skipped
// entirely, never written.
func (m *DistanceMatrix[V, W]) Set(edges pack.EdgePack[V], values lanes.Vec[W], mask lanes.Mask[W]) {
	from := edges.From.Data()
	to := edges.To.Data()
	vals := values.Data()
	n := min(len(from), min(len(to), len(vals)))

	for i := 0; i < n; i++ {
		if i < mask.NumLanes() && !mask.GetBit(i) {
			continue
		}
		idx, ok := m.offset(from[i], to[i])
		if !ok {
			continue
		}
		m.weights[idx] = vals[i]
	}
}

func (m *DistanceMatrix[V, W]) offset(from, to V) (int, bool) {
	f, t := int(from), int(to)
	if f < 0 || f >= m.size || t < 0 || t >= m.size {
		return 0, false
	}
	return f*m.size + t, true
}

func boolsToMaskW[W lanes.Lanes](bits []bool) lanes.Mask[W] {
	flags := make([]W, len(bits))
	for i, b := range bits {
		if b {
			flags[i] = 1
		}
	}
	return lanes.GreaterThan(lanes.Load(flags), lanes.Zero[W]())
}
