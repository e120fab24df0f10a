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

// PathPoint is the scalar form of an emitted dot, exposed to the tour
// optimizer once screening has finished filling a PointBuffer.
type PathPoint struct {
	X, Y float32
	Size float32
}

// Coords returns the point's coordinates, satisfying cost.Vertex.
func (p PathPoint) Coords() (x, y float32) {
	return p.X, p.Y
}
