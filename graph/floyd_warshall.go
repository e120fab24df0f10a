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

package graph

import (
	"github.com/ravlan/plotcore/lanes"
	"github.com/ravlan/plotcore/pack"
)

// FloydWarshall computes all-pairs shortest paths over matrix in place,
// seeded from g's edge weights. The k and i loops are scalar; the j loop is
// vectorized in lane-width chunks, matching the reference algorithm's
// "scalar k & i, SIMD j" shape.
func FloydWarshall[W lanes.Floats](matrix *DistanceMatrix[int32, W], g *Graph[int32, W]) {
	laneWidth := lanes.MaxLanes[W]()
	n := g.VertexCount()

	for edges, weights := range g.Edges(laneWidth) {
		full := lanes.TailMask[W](edges.NumLanes())
		matrix.Set(edges, weights, full)
	}
	for v := 0; v < n; v++ {
		self := pack.EdgePack[int32]{
			From: lanes.Load([]int32{int32(v)}),
			To:   lanes.Load([]int32{int32(v)}),
		}
		matrix.Set(self, lanes.Zero[W](), lanes.TailMask[W](1))
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ikEdge := pack.EdgePack[int32]{
				From: lanes.Load([]int32{int32(i)}),
				To:   lanes.Load([]int32{int32(k)}),
			}
			ikWeightVec, _ := matrix.Get(ikEdge, lanes.TailMask[W](1))
			ikWeight := ikWeightVec.Data()[0]

			for base := 0; base < n; base += laneWidth {
				chunk := min(laneWidth, n-base)

				js := make([]int32, laneWidth)
				is := make([]int32, laneWidth)
				ks := make([]int32, laneWidth)
				for lane := 0; lane < chunk; lane++ {
					js[lane] = int32(base + lane)
					is[lane] = int32(i)
					ks[lane] = int32(k)
				}
				jMask := lanes.TailMask[W](chunk)

				ijEdges := pack.EdgePack[int32]{From: lanes.Load(is), To: lanes.Load(js)}
				kjEdges := pack.EdgePack[int32]{From: lanes.Load(ks), To: lanes.Load(js)}

				ijWeights, ijValid := matrix.Get(ijEdges, jMask)
				kjWeights, kjValid := matrix.Get(kjEdges, jMask)

				sum := lanes.Add(lanes.Const[W](float32(ikWeight)), kjWeights)
				combined := lanes.MaskAnd(lanes.MaskAnd(ijValid, kjValid), jMask)

				lessThan := lanes.LessThan(sum, ijWeights)
				newMin := lanes.IfThenElse(lessThan, sum, ijWeights)

				matrix.Set(ijEdges, newMin, combined)
			}
		}
	}
}
