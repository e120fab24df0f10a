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

package pack

// PointBuffer is the SoA sink the screening engine appends into: parallel
// Xs/Ys/Sizes arrays, always equal in length. It is singly owned for the
// duration of a screening run; a caller wanting concurrent access must copy
// a prefix under its own synchronization.
type PointBuffer struct {
	Xs    []float32
	Ys    []float32
	Sizes []float32
}

// NewPointBuffer returns an empty buffer.
func NewPointBuffer() *PointBuffer {
	return &PointBuffer{}
}

// NewPointBufferWithCapacity returns an empty buffer pre-sized to avoid
// reallocation during a run of roughly n expected points.
func NewPointBufferWithCapacity(n int) *PointBuffer {
	return &PointBuffer{
		Xs:    make([]float32, 0, n),
		Ys:    make([]float32, 0, n),
		Sizes: make([]float32, 0, n),
	}
}

// Len returns the number of points currently held.
func (b *PointBuffer) Len() int {
	return len(b.Xs)
}

// PushMasked appends the active lanes of pts, in lane order, giving every
// appended point the same size, and returns the index each lane landed at.
// Inactive lanes are never read from pts and their returned index is a
// placeholder that must never be dereferenced by the caller, since the
// corresponding mask bit is zero. The result is a plain slice, not a
// lanes.Vec[uint64]: a DotPack's lane width is governed by MaxLanes[uint64](),
// which need not match the mask's own element width, so wrapping it in a Vec
// here would silently truncate on narrower-than-float32 uint64 dispatch.
func (b *PointBuffer) PushMasked(pts PointPack, size float32, mask Mask) []uint64 {
	xs := pts.Xs.Data()
	ys := pts.Ys.Data()
	n := mask.NumLanes()
	indices := make([]uint64, n)
	for i := 0; i < n; i++ {
		if mask.GetBit(i) {
			indices[i] = uint64(len(b.Xs))
			b.Xs = append(b.Xs, xs[i])
			b.Ys = append(b.Ys, ys[i])
			b.Sizes = append(b.Sizes, size)
		}
	}
	return indices
}

// PathPoints materializes the buffer's scalar PathPoint view for the tour
// optimizer.
func (b *PointBuffer) PathPoints() []PathPoint {
	pts := make([]PathPoint, len(b.Xs))
	for i := range pts {
		pts[i] = PathPoint{X: b.Xs[i], Y: b.Ys[i], Size: b.Sizes[i]}
	}
	return pts
}
