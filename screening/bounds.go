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

package screening

import "math"

// Bounds is the per-run geometry a screening Engine walks: the grid-to-world
// isometry, the integer grid-index range covering the image, and the
// image's world-space axis-aligned bounding box (used for the per-cell
// containment check).
type Bounds struct {
	GridToWorld isometry

	IMin, IMax int
	JMin, JMax int

	WorldXMin, WorldXMax float32
	WorldYMin, WorldYMax float32
}

// Empty reports whether the index range covers no cells.
func (b Bounds) Empty() bool {
	return b.IMax < b.IMin || b.JMax < b.JMin
}

// PrepareBounds computes the Bounds for a placement screened by grid. It is
// a pure function of its inputs: calling it twice with the same arguments
// returns bit-identical results.
func PrepareBounds(placement Placement, grid Grid) (Bounds, error) {
	if placement.Width <= 0 || placement.Height <= 0 {
		return Bounds{}, ErrEmptyBounds
	}
	if grid.Resolution <= 0 || !isFinite(grid.Resolution) {
		return Bounds{}, ErrInvalidParameters
	}
	if placement.PPU <= 0 || !isFinite(placement.PPU) {
		return Bounds{}, ErrInvalidParameters
	}

	worldXMin := placement.PositionX
	worldXMax := placement.PositionX + placement.WorldWidth()
	worldYMin := placement.PositionY
	worldYMax := placement.PositionY + placement.WorldHeight()

	gridToWorld := newIsometry(grid.OriginX, grid.OriginY, grid.Orientation)
	worldToGrid := gridToWorld.Invert()

	corners := [4][2]float32{
		{worldXMin, worldYMin},
		{worldXMax, worldYMin},
		{worldXMin, worldYMax},
		{worldXMax, worldYMax},
	}

	gxMin, gxMax := float32(math.Inf(1)), float32(math.Inf(-1))
	gyMin, gyMax := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, c := range corners {
		gx, gy := worldToGrid.Apply(c[0], c[1])
		gxMin, gxMax = min(gxMin, gx), max(gxMax, gx)
		gyMin, gyMax = min(gyMin, gy), max(gyMax, gy)
	}

	var iMin, iMax, jMin, jMax int
	if grid.Strict {
		iMin = int(math.Ceil(float64(gxMin / grid.Resolution)))
		iMax = int(math.Floor(float64(gxMax / grid.Resolution)))
		jMin = int(math.Ceil(float64(gyMin / grid.Resolution)))
		jMax = int(math.Floor(float64(gyMax / grid.Resolution)))
	} else {
		iMin = int(math.Floor(float64(gxMin / grid.Resolution)))
		iMax = int(math.Ceil(float64(gxMax / grid.Resolution)))
		jMin = int(math.Floor(float64(gyMin / grid.Resolution)))
		jMax = int(math.Ceil(float64(gyMax / grid.Resolution)))
	}

	bounds := Bounds{
		GridToWorld: gridToWorld,
		IMin:        iMin,
		IMax:        iMax,
		JMin:        jMin,
		JMax:        jMax,
		WorldXMin:   worldXMin,
		WorldXMax:   worldXMax,
		WorldYMin:   worldYMin,
		WorldYMax:   worldYMax,
	}

	if bounds.Empty() {
		return Bounds{}, ErrEmptyBounds
	}
	return bounds, nil
}

func isFinite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
