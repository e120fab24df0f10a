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

package tour

import "github.com/ravlan/plotcore/pack"

// TwoOpt runs first-improvement 2-opt local search over order, an existing
// permutation of [0, len(points)), for up to maxPasses full passes. Each
// accepted swap reverses order[i+1:j+1] and strictly decreases total tour
// weight; the pass repeats until either a full scan finds no improvement or
// maxPasses is exhausted.
//
// Every candidate swap's cost is judged by recomputing the whole tour's
// weight rather than an incremental delta. The metric is asymmetric, so a
// segment reversal changes the direction every edge inside it is traversed
// in; a delta update would have to special-case each affected edge's
// flipped direction, while recomputing the full weight gets this for free
// because weight() always evaluates edges in their current traversal order.
func TwoOpt(points []pack.PathPoint, order []int, settings Settings, maxPasses int) []int {
	n := len(order)
	if n < 4 || maxPasses <= 0 {
		return order
	}

	best := append([]int(nil), order...)
	bestWeight := tourWeight(points, best, settings)

	for pass := 0; pass < maxPasses; pass++ {
		improved := false

		for i := 0; i < n-2; i++ {
			for j := i + 2; j < n; j++ {
				candidate := append([]int(nil), best...)
				reverseSegment(candidate, i+1, j)

				w := tourWeight(points, candidate, settings)
				if w < bestWeight {
					best = candidate
					bestWeight = w
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return best
}

func reverseSegment(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}

func tourWeight(points []pack.PathPoint, order []int, settings Settings) float32 {
	if len(order) == 0 {
		return 0
	}

	var total float32
	var prev pack.PathPoint
	havePrev := false

	if settings.IncludeStart {
		prev = pack.PathPoint{X: settings.StartX, Y: settings.StartY}
		havePrev = true

		first := points[order[0]]
		total += weightStep(prev, first, nil, settings)
	} else {
		start := pack.PathPoint{X: settings.StartX, Y: settings.StartY}
		total += settings.Energy.Cost(points[order[0]].X-start.X, points[order[0]].Y-start.Y)
	}

	for k := 1; k < len(order); k++ {
		from := points[order[k-1]]
		to := points[order[k]]
		if havePrev {
			total += weightStep(from, to, &prev, settings)
		} else {
			total += settings.Energy.Cost(to.X-from.X, to.Y-from.Y)
		}
		prev = from
		havePrev = true
	}

	return total
}

// weightStep returns the composite weight of moving from "from" to "to",
// adding a direction-change penalty measured against prevPoint when it is
// non-nil. It mirrors cost.Weight's contract without importing pack into
// the cost package: tour is the one place that needs both pack.PathPoint
// values and cost's penalty formula together.
func weightStep(from, to pack.PathPoint, prevPoint *pack.PathPoint, settings Settings) float32 {
	dx, dy := to.X-from.X, to.Y-from.Y
	w := settings.Energy.Cost(dx, dy)
	if prevPoint == nil {
		return w
	}
	vIn := [2]float32{from.X - prevPoint.X, from.Y - prevPoint.Y}
	vOut := [2]float32{dx, dy}
	return w + settings.Penalty.Penalty(vIn, vOut)
}
