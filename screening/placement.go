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

// Package screening implements the frequency-modulated halftone engine: it
// walks a rotated world-space grid over an image and probabilistically
// emits dots into a pack.PointBuffer wherever local intensity clears a
// random threshold.
package screening

// Placement anchors an image in 2-D world space: its pixel dimensions, the
// world-space position of its top-left corner, and a pixels-per-unit scale.
// Immutable once constructed.
type Placement struct {
	Width, Height int
	PositionX     float32
	PositionY     float32
	PPU           float32
}

// WorldWidth returns the image's width in world units.
func (p Placement) WorldWidth() float32 {
	return float32(p.Width) / p.PPU
}

// WorldHeight returns the image's height in world units.
func (p Placement) WorldHeight() float32 {
	return float32(p.Height) / p.PPU
}
