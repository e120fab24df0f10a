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

// Package cost holds the directional cost model the tour optimizer scores
// candidate edges with: an asymmetric-metric "energy" term (moving up costs
// more than moving down, or vice versa) plus a direction-change penalty that
// discourages sharp turns.
package cost

import (
	"math"

	"github.com/ravlan/plotcore/lanes"
)

// Energy is an asymmetric travel-cost metric over a 2-D displacement.
// Symmetric holds the (diagonal) quadratic-form weights applied to the
// displacement regardless of direction; Asymmetric holds the signed linear
// term that makes the cost of (dx, dy) differ from the cost of (-dx, -dy).
type Energy struct {
	Symmetric  [2][2]float32
	Asymmetric [2][2]float32
}

// FromPenalties builds an Energy from three named physical penalties: the
// cost of moving straight up, straight down, and directly sideways. up and
// down bias vertical travel asymmetrically (e.g. a pen lifting against
// gravity costs more than dropping with it); sideways scales horizontal
// travel symmetrically.
//
// The diagonal symmetric weight for vertical motion is the square of the
// average of up and down (the metric itself has no preferred direction; only
// the asymmetric term does), the horizontal one is sideways squared, and the
// asymmetric weight is the half-difference (down - up) / 2.
func FromPenalties(up, down, sideways float32) Energy {
	wxx := sideways * sideways
	wyy := ((up + down) / 2) * ((up + down) / 2)
	ay := (down - up) / 2

	return Energy{
		Symmetric:  [2][2]float32{{wxx, 0}, {0, wyy}},
		Asymmetric: [2][2]float32{{0, 0}, {0, ay}},
	}
}

// Cost returns the travel cost of the displacement (dx, dy) = to - from.
//
// The symmetric term is the quadratic form sqrt(dᵀ·Ms·d) over the diagonal
// weight matrix. The asymmetric term is linear in the displacement and must
// be negated relative to a literal row-vector·diagonal-matrix reading: the
// diagonal's y-entry is ay = (down-up)/2, built so that downward travel
// (negative dy) is cheap when down < up; negating the dot product
// -(dx·Ma_xx + dy·Ma_yy) is what actually produces that ordering, since a
// negative dy times a negative ay would otherwise add a positive cost to the
// cheap direction.
func (e Energy) Cost(dx, dy float32) float32 {
	sym := dx*dx*e.Symmetric[0][0] + dy*dy*e.Symmetric[1][1]
	asym := -(dx*e.Asymmetric[0][0] + dy*e.Asymmetric[1][1])
	return float32(math.Sqrt(float64(sym))) + asym
}

// CostVec is the lane-wise form of Cost, used by the tour optimizer's
// vectorized nearest-neighbor scan.
func (e Energy) CostVec(dx, dy lanes.Vec[float32]) lanes.Vec[float32] {
	wxx := lanes.Const[float32](e.Symmetric[0][0])
	wyy := lanes.Const[float32](e.Symmetric[1][1])
	axx := lanes.Const[float32](e.Asymmetric[0][0])
	ayy := lanes.Const[float32](e.Asymmetric[1][1])

	sym := lanes.FMA(lanes.Mul(dx, dx), wxx, lanes.Mul(lanes.Mul(dy, dy), wyy))
	asym := lanes.Neg(lanes.FMA(dx, axx, lanes.Mul(dy, ayy)))
	return lanes.Add(lanes.Sqrt(sym), asym)
}
