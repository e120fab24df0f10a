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

// Package tour reorders a set of screened dots into a path that minimizes
// total travel cost under an asymmetric, direction-sensitive metric: a
// greedy nearest-neighbour baseline followed by an optional 2-opt local
// search pass.
package tour

import "github.com/ravlan/plotcore/cost"

// Settings configures a tour run.
type Settings struct {
	Energy  cost.Energy
	Penalty cost.DirectionChangePenalty

	// Start is the virtual position the tour departs from.
	StartX, StartY float32

	// IncludeStart, when true, makes Start count as the "previous" vertex
	// for the direction-change penalty of the very first real move.
	IncludeStart bool

	// TwoOptPasses bounds how many full improvement passes TwoOpt runs; 0
	// skips 2-opt entirely and ships the nearest-neighbour tour as-is.
	TwoOptPasses int
}

type startVertex struct{ x, y float32 }

func (s startVertex) Coords() (float32, float32) { return s.x, s.y }
