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

// Package pack holds the fixed-width SIMD packs (structure of arrays) that
// flow between the screening engine, the tour optimizer and the graph
// abstractions, plus the dynamic PointBuffer they are appended into.
package pack

import "github.com/ravlan/plotcore/lanes"

// Mask is the lane-activity mask shared by every pack in this package.
// It is lanes.Mask[float32] directly, not a distinct type: "mask" is one
// concept, and packs built on different element types still gate on the
// same boolean lanes.
type Mask = lanes.Mask[float32]

// PointPack holds L coplanar 2-D points in structure-of-arrays form.
type PointPack struct {
	Xs lanes.Vec[float32]
	Ys lanes.Vec[float32]
}

// SplatPoint broadcasts a single (x, y) pair into a width-lane PointPack.
func SplatPoint(x, y float32, width int) PointPack {
	xs := make([]float32, width)
	ys := make([]float32, width)
	for i := range xs {
		xs[i] = x
		ys[i] = y
	}
	return PointPack{Xs: lanes.Load(xs), Ys: lanes.Load(ys)}
}

// Add returns the lane-wise sum of two point packs.
func (p PointPack) Add(o PointPack) PointPack {
	return PointPack{Xs: lanes.Add(p.Xs, o.Xs), Ys: lanes.Add(p.Ys, o.Ys)}
}

// Sub returns the lane-wise difference of two point packs (p - o).
func (p PointPack) Sub(o PointPack) PointPack {
	return PointPack{Xs: lanes.Sub(p.Xs, o.Xs), Ys: lanes.Sub(p.Ys, o.Ys)}
}

// NumLanes returns the pack's lane width.
func (p PointPack) NumLanes() int {
	return p.Xs.NumLanes()
}
