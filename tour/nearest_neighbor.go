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

import (
	"math"

	"github.com/ravlan/plotcore/lanes"
	"github.com/ravlan/plotcore/pack"
)

// NearestNeighbor builds a greedy tour over points: starting from
// settings.Start, it repeatedly jumps to the unvisited point minimizing the
// composite weight from (and, once two points have been visited, the
// direction into) the current point. Ties are broken by the smaller index.
//
// The inner scan over unvisited candidates is lane-width chunked: each
// chunk's xs/ys are masked-gathered, costed lane-wise, and invalid
// (visited or out-of-chunk) lanes are forced to +Inf before a horizontal
// min-reduce picks the chunk's best candidate.
func NearestNeighbor(points []pack.PathPoint, settings Settings) []int {
	n := len(points)
	if n == 0 {
		return nil
	}

	visited := make([]bool, n)
	tour := make([]int, 0, n)

	xs := make([]float32, n)
	ys := make([]float32, n)
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	var prev, current pack.PathPoint
	havePrev := false

	// Step 1: pick the point closest to the virtual start.
	{
		start := startVertex{settings.StartX, settings.StartY}
		best := -1
		bestW := float32(math.Inf(1))
		for i, p := range points {
			w := settings.Energy.Cost(p.X-start.x, p.Y-start.y)
			if w < bestW {
				bestW, best = w, i
			}
		}
		tour = append(tour, best)
		visited[best] = true
		current = points[best]
		if settings.IncludeStart {
			prev = pack.PathPoint{X: start.x, Y: start.y}
			havePrev = true
		}
	}

	lanesWidth := lanes.MaxLanes[float32]()
	indexBuf := make([]int32, lanesWidth)

	for len(tour) < n {
		bestIdx := -1
		bestW := float32(math.Inf(1))

		for base := 0; base < n; base += lanesWidth {
			chunk := min(lanesWidth, n-base)
			for lane := 0; lane < lanesWidth; lane++ {
				if lane < chunk {
					indexBuf[lane] = int32(base + lane)
				} else {
					indexBuf[lane] = -1
				}
			}
			indices := lanes.Load(indexBuf)

			activeBits := make([]bool, lanesWidth)
			for lane := 0; lane < chunk; lane++ {
				idx := base + lane
				activeBits[lane] = !visited[idx]
			}
			active := boolsToMask(activeBits)

			gx := lanes.GatherIndexMasked[float32, int32](xs, indices, active)
			gy := lanes.GatherIndexMasked[float32, int32](ys, indices, active)

			dx := lanes.Sub(gx, lanes.Const[float32](current.X))
			dy := lanes.Sub(gy, lanes.Const[float32](current.Y))

			w := settings.Energy.CostVec(dx, dy)
			if havePrev {
				vInX := lanes.Const[float32](current.X - prev.X)
				vInY := lanes.Const[float32](current.Y - prev.Y)
				w = lanes.Add(w, settings.Penalty.PenaltyVec(vInX, vInY, dx, dy))
			}

			inf := lanes.Const[float32](float32(math.Inf(1)))
			w = lanes.IfThenElse(active, w, inf)

			chunkMin := lanes.ReduceMin(w)
			if chunkMin < bestW {
				wData := w.Data()
				for lane := 0; lane < chunk; lane++ {
					if wData[lane] == chunkMin {
						bestW = chunkMin
						bestIdx = base + lane
						break
					}
				}
			}
		}

		if bestIdx < 0 {
			break
		}

		// From here on there is always a genuine predecessor: either the
		// virtual start (if IncludeStart made it count for this step) or
		// the point visited just before "current".
		prev = current
		havePrev = true
		current = points[bestIdx]
		visited[bestIdx] = true
		tour = append(tour, bestIdx)
	}

	return tour
}

func boolsToMask(bits []bool) pack.Mask {
	flags := make([]float32, len(bits))
	for i, b := range bits {
		if b {
			flags[i] = 1
		}
	}
	return lanes.GreaterThan(lanes.Load(flags), lanes.Zero[float32]())
}
