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
	"sort"
	"testing"

	"github.com/ravlan/plotcore/cost"
	"github.com/ravlan/plotcore/pack"
)

func identityEnergy() cost.Energy {
	return cost.FromPenalties(1.0, 1.0, 1.0)
}

func TestNearestNeighborLinearPath(t *testing.T) {
	points := []pack.PathPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
	}
	settings := Settings{Energy: identityEnergy(), Penalty: 0, StartX: 0, StartY: 0}

	got := NearestNeighbor(points, settings)
	want := []int{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected linear tour %v, got %v", want, got)
		}
	}
}

func TestNearestNeighborGravityPreference(t *testing.T) {
	points := []pack.PathPoint{
		{X: 0, Y: 1},
		{X: 0, Y: -1},
	}
	settings := Settings{
		Energy:  cost.FromPenalties(1.5, 0.1, 1.0),
		Penalty: 0,
		StartX:  0, StartY: 0,
	}

	got := NearestNeighbor(points, settings)
	if got[0] != 1 {
		t.Fatalf("expected to visit (0,-1) [index 1] first, got order %v", got)
	}
}

func TestNearestNeighborTurnAvoidance(t *testing.T) {
	points := []pack.PathPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	settings := Settings{
		Energy:  identityEnergy(),
		Penalty: 100,
		StartX:  0, StartY: 0,
	}

	got := NearestNeighbor(points, settings)
	want := []int{0, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected turn-avoiding tour %v, got %v", want, got)
		}
	}
}

func TestNearestNeighborPermutesInput(t *testing.T) {
	points := []pack.PathPoint{
		{X: 3, Y: 1}, {X: -2, Y: 4}, {X: 0, Y: 0}, {X: 5, Y: -3},
		{X: 1, Y: 1}, {X: -1, Y: -1}, {X: 2, Y: 2}, {X: -3, Y: 0},
		{X: 7, Y: 2}, {X: 4, Y: -4},
	}
	settings := Settings{Energy: cost.FromPenalties(1.2, 0.8, 1.0), Penalty: 5, StartX: 0, StartY: 0}

	got := NearestNeighbor(points, settings)
	if len(got) != len(points) {
		t.Fatalf("expected a permutation of length %d, got %d", len(points), len(got))
	}

	sorted := append([]int(nil), got...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("expected a permutation of [0,%d), got sorted %v", len(points), sorted)
		}
	}
}

func TestNearestNeighborEmptyInput(t *testing.T) {
	got := NearestNeighbor(nil, Settings{Energy: identityEnergy()})
	if len(got) != 0 {
		t.Fatalf("expected an empty tour for no points, got %v", got)
	}
}
