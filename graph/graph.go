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
	"iter"

	"github.com/ravlan/plotcore/lanes"
	"github.com/ravlan/plotcore/pack"
)

// Edge is a scalar (from, to, weight) triple, the unit a Graph's edge
// iterator expands into SIMD-width packs.
type Edge[V lanes.Integers, W lanes.Lanes] struct {
	From, To V
	Weight   W
}

// Graph is a dense, fully-connected vertex set with edge weights supplied
// by a caller function. It exists to feed DistanceMatrix and FloydWarshall
// lane-width packs of edges/vertices without either of them knowing how the
// weights were produced.
type Graph[V lanes.Integers, W lanes.Lanes] struct {
	vertexCount int
	weight      func(from, to V) W
}

// NewGraph builds a complete graph over [0, vertexCount) whose edge weights
// come from weight.
func NewGraph[V lanes.Integers, W lanes.Lanes](vertexCount int, weight func(from, to V) W) *Graph[V, W] {
	return &Graph[V, W]{vertexCount: vertexCount, weight: weight}
}

// VertexCount returns the number of vertices.
func (g *Graph[V, W]) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of directed edges (vertexCount^2, including
// self-loops).
func (g *Graph[V, W]) EdgeCount() int { return g.vertexCount * g.vertexCount }

// Vertices yields lane-width packs of vertex indices [0, vertexCount), the
// final pack's trailing lanes masked off.
func (g *Graph[V, W]) Vertices(laneWidth int) iter.Seq2[lanes.Vec[V], lanes.Mask[V]] {
	return func(yield func(lanes.Vec[V], lanes.Mask[V]) bool) {
		for base := 0; base < g.vertexCount; base += laneWidth {
			chunk := min(laneWidth, g.vertexCount-base)
			ids := make([]V, laneWidth)
			for lane := 0; lane < chunk; lane++ {
				ids[lane] = V(base + lane)
			}
			mask := lanes.TailMask[V](chunk)
			if !yield(lanes.Load(ids), mask) {
				return
			}
		}
	}
}

// Edges yields lane-width packs of (from, to) pairs together with their
// weights, covering every directed edge of the complete graph in raster
// order (to varies fastest within a from-row). The final pack holds only the
// remaining edges, so its NumLanes is the count of edges it carries.
func (g *Graph[V, W]) Edges(laneWidth int) iter.Seq2[pack.EdgePack[V], lanes.Vec[W]] {
	return func(yield func(pack.EdgePack[V], lanes.Vec[W]) bool) {
		total := g.EdgeCount()
		for base := 0; base < total; base += laneWidth {
			chunk := min(laneWidth, total-base)

			froms := make([]V, chunk)
			tos := make([]V, chunk)
			weights := make([]W, chunk)
			for lane := 0; lane < chunk; lane++ {
				linear := base + lane
				from := V(linear / g.vertexCount)
				to := V(linear % g.vertexCount)
				froms[lane] = from
				tos[lane] = to
				weights[lane] = g.weight(from, to)
			}

			edges := pack.EdgePack[V]{From: lanes.Load(froms), To: lanes.Load(tos)}
			if !yield(edges, lanes.Load(weights)) {
				return
			}
		}
	}
}
