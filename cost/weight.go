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

package cost

import "github.com/ravlan/plotcore/lanes"

// Vertex is the minimal 2-D coordinate Weight needs. pack.PathPoint
// implements it so this package never needs to import pack, keeping the
// dependency direction pack <- cost <- tour rather than a cycle.
type Vertex interface {
	Coords() (x, y float32)
}

// Weight returns the full edge weight from "from" to "to": the energy cost
// of the displacement, plus a direction-change penalty if prev is non-nil.
// prev is the vertex visited immediately before "from"; a nil prev means
// "from" is the tour's start, and no turn penalty applies.
func Weight(prev, from, to Vertex, e Energy, p DirectionChangePenalty) float32 {
	fx, fy := from.Coords()
	tx, ty := to.Coords()
	dx, dy := tx-fx, ty-fy

	w := e.Cost(dx, dy)
	if prev == nil {
		return w
	}

	px, py := prev.Coords()
	vIn := [2]float32{fx - px, fy - py}
	vOut := [2]float32{dx, dy}
	return w + p.Penalty(vIn, vOut)
}

// WeightVec is the lane-wise form of Weight's energy term alone (the
// direction penalty is evaluated separately via PenaltyVec since it needs
// the previous-edge vectors, which the nearest-neighbor scan computes once
// per step rather than once per candidate).
func WeightVec(e Energy, dx, dy lanes.Vec[float32]) lanes.Vec[float32] {
	return e.CostVec(dx, dy)
}
