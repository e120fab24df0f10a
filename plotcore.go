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

// Package plotcore turns a raster image into an ordered sequence of
// physical waypoints for a pen plotter: screen it into FM-halftoned dots,
// then order those dots into a single travel path.
package plotcore

import (
	"github.com/ravlan/plotcore/pack"
	"github.com/ravlan/plotcore/screening"
	"github.com/ravlan/plotcore/tour"
)

// chunkSize bounds how many grid cells a single Engine.Generate call visits,
// keeping ScreenFM's memory footprint flat regardless of image size.
const chunkSize = 4096

// ScreenFM runs FM halftone screening over image to completion, appending
// every emitted dot to buf and returning how many dots were emitted. It
// returns screening.ErrNoPointsEmitted if the run visited cells but never
// cleared a random threshold, and propagates any error PrepareBounds raises
// for a degenerate placement or grid.
func ScreenFM(image screening.ImageView, placement screening.Placement, grid screening.Grid, seed uint64, mode screening.Mode, buf *pack.PointBuffer) (int, error) {
	engine, err := screening.NewEngine(image, placement, grid, seed, mode)
	if err != nil {
		return 0, err
	}

	before := buf.Len()
	for {
		progress, err := engine.Generate(chunkSize, buf)
		if err != nil {
			return buf.Len() - before, err
		}
		if progress.Finished {
			break
		}
	}

	emitted := buf.Len() - before
	if emitted == 0 {
		return 0, screening.ErrNoPointsEmitted
	}
	return emitted, nil
}

// Optimize orders points into a single travel path: a nearest-neighbour
// baseline, refined by up to settings.TwoOptPasses passes of 2-opt local
// search when that budget is positive. The result is a permutation of
// [0, len(points)), the order in which points should be visited.
func Optimize(points []pack.PathPoint, settings tour.Settings) []int {
	order := tour.NearestNeighbor(points, settings)
	if settings.TwoOptPasses <= 0 {
		return order
	}
	return tour.TwoOpt(points, order, settings, settings.TwoOptPasses)
}
