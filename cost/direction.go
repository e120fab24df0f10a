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

	"github.com/ravlan/plotcore/lanes"
)

// directionEpsilon floors the |v_in|*|v_out| denominator so a zero-length
// incoming or outgoing vector never produces a NaN penalty.
const directionEpsilon = 1e-12

// DirectionChangePenalty scales the cost added when the tour turns sharply
// at a vertex, from 0 (no turn) up to the penalty's own value (a full
// reversal).
type DirectionChangePenalty float32

// Penalty returns k*(1-cosTheta)/2, clamped to [0, k], where theta is the
// angle between the incoming vector vIn (prev -> current) and the outgoing
// vector vOut (current -> next).
func (k DirectionChangePenalty) Penalty(vIn, vOut [2]float32) float32 {
	dot := vIn[0]*vOut[0] + vIn[1]*vOut[1]
	magIn := vIn[0]*vIn[0] + vIn[1]*vIn[1]
	magOut := vOut[0]*vOut[0] + vOut[1]*vOut[1]

	denom := sqrt32(magIn*magOut) + directionEpsilon
	cosTheta := dot / denom
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	p := float32(k) * (1 - cosTheta) / 2
	if p < 0 {
		return 0
	}
	if p > float32(k) {
		return float32(k)
	}
	return p
}

// PenaltyVec is the lane-wise form of Penalty.
func (k DirectionChangePenalty) PenaltyVec(vInX, vInY, vOutX, vOutY lanes.Vec[float32]) lanes.Vec[float32] {
	dot := lanes.FMA(vInX, vOutX, lanes.Mul(vInY, vOutY))
	magIn := lanes.FMA(vInX, vInX, lanes.Mul(vInY, vInY))
	magOut := lanes.FMA(vOutX, vOutX, lanes.Mul(vOutY, vOutY))

	eps := lanes.Const[float32](directionEpsilon)
	denom := lanes.Add(lanes.Sqrt(lanes.Mul(magIn, magOut)), eps)
	cosTheta := lanes.Div(dot, denom)

	one := lanes.Const[float32](1)
	negOne := lanes.Const[float32](-1)
	cosTheta = lanes.Min(cosTheta, one)
	cosTheta = lanes.Max(cosTheta, negOne)

	half := lanes.Const[float32](0.5)
	kv := lanes.Const[float32](float32(k))
	p := lanes.Mul(lanes.Mul(kv, lanes.Sub(one, cosTheta)), half)

	zero := lanes.Zero[float32]()
	p = lanes.Max(p, zero)
	p = lanes.Min(p, kv)
	return p
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
