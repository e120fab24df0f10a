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

import (
	"math"
	"testing"

	"github.com/ravlan/plotcore/lanes"
)

func TestFromPenaltiesGravityPreference(t *testing.T) {
	e := FromPenalties(1.5, 0.1, 1.0)

	costUp := e.Cost(0, 1)
	costDown := e.Cost(0, -1)

	if costDown >= costUp {
		t.Fatalf("expected moving down to be cheaper than moving up: down=%v up=%v", costDown, costUp)
	}
}

func TestCostSidewaysUsesSymmetricWeight(t *testing.T) {
	e := FromPenalties(1.0, 1.0, 2.0)

	left := e.Cost(-1, 0)
	right := e.Cost(1, 0)

	if math.Abs(float64(left-right)) > 1e-5 {
		t.Fatalf("expected symmetric sideways cost, got left=%v right=%v", left, right)
	}
}

func TestCostVecMatchesScalarCost(t *testing.T) {
	e := FromPenalties(1.5, 0.1, 1.0)

	dxs := []float32{0, 0, 1, -1, 2}
	dys := []float32{1, -1, 0, 0, -3}

	got := e.CostVec(lanes.Load(dxs), lanes.Load(dys)).Data()
	for i := range got {
		want := e.Cost(dxs[i], dys[i])
		if math.Abs(float64(got[i]-want)) > 1e-4 {
			t.Fatalf("lane %d: CostVec=%v scalar Cost=%v", i, got[i], want)
		}
	}
}

func TestCostMonotonicInDisplacementMagnitude(t *testing.T) {
	e := FromPenalties(1.0, 1.0, 1.0)

	small := e.Cost(1, 0)
	large := e.Cost(2, 0)

	if large <= small {
		t.Fatalf("expected cost to grow with displacement magnitude: small=%v large=%v", small, large)
	}
}
