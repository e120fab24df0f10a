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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphVerticesCoversEveryIndexOnce(t *testing.T) {
	g := NewGraph[int32, float32](7, func(from, to int32) float32 { return 1 })

	seen := make(map[int32]int)
	for ids, mask := range g.Vertices(4) {
		data := ids.Data()
		for lane := 0; lane < mask.NumLanes(); lane++ {
			if mask.GetBit(lane) {
				seen[data[lane]]++
			}
		}
	}

	require.Len(t, seen, 7)
	for v, count := range seen {
		require.Equalf(t, 1, count, "vertex %d visited %d times, want 1", v, count)
	}
}

func TestGraphEdgesCoversEveryDirectedPairOnce(t *testing.T) {
	g := NewGraph[int32, float32](3, func(from, to int32) float32 { return float32(from*10 + to) })

	seen := make(map[[2]int32]float32)
	for edges, weights := range g.Edges(4) {
		froms := edges.From.Data()
		tos := edges.To.Data()
		ws := weights.Data()
		for lane := 0; lane < edges.NumLanes(); lane++ {
			key := [2]int32{froms[lane], tos[lane]}
			_, dup := seen[key]
			require.Falsef(t, dup, "edge %v visited twice", key)
			seen[key] = ws[lane]
		}
	}

	require.Len(t, seen, 9)
	require.Equal(t, float32(12), seen[[2]int32{1, 2}])
}
