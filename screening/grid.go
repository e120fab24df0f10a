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

// Grid is an infinite regular grid of candidate dot positions in world
// space: an origin, a counter-clockwise orientation in radians, the spacing
// between adjacent grid points, and the diameter of a deposited dot.
// PointSize should not exceed Resolution for a non-overlapping layout, but
// this is not enforced.
type Grid struct {
	PointSize   float32
	OriginX     float32
	OriginY     float32
	Orientation float32
	Resolution  float32

	// Strict controls how partially-covered cells at the image boundary are
	// handled: true excludes them, false includes them.
	Strict bool
}

// Mode selects which comparison direction between sampled intensity and the
// per-lane random threshold causes a dot to be emitted. The source material
// this engine was ported from disagreed with itself about which mode a
// standard web front-end should default to, so callers must choose
// explicitly rather than rely on an implicit default.
type Mode int

const (
	// BrightAreas emits a dot when the sampled intensity is at or above the
	// drawn threshold: suited for depositing ink/pigment in bright regions.
	BrightAreas Mode = iota
	// DarkAreas emits a dot when the drawn threshold exceeds the sampled
	// intensity: suited for spraying or marking dark regions.
	DarkAreas
)
