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

import "github.com/ravlan/plotcore/lanes"

// EdgePack holds L parallel graph edges as two index vectors, consumed by
// graph.DistanceMatrix's masked Get/Set.
type EdgePack[V lanes.Integers] struct {
	From lanes.Vec[V]
	To   lanes.Vec[V]
}

// NumLanes returns the pack's lane width.
func (e EdgePack[V]) NumLanes() int {
	return e.From.NumLanes()
}

// DotPack holds L indices into a PointBuffer.
type DotPack struct {
	Index lanes.Vec[uint64]
}

// NumLanes returns the pack's lane width.
func (d DotPack) NumLanes() int {
	return d.Index.NumLanes()
}
