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

package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/ravlan/plotcore"
	"github.com/ravlan/plotcore/cost"
	"github.com/ravlan/plotcore/pack"
	"github.com/ravlan/plotcore/screening"
	"github.com/ravlan/plotcore/tour"
)

// gridResolution and pointSize are the demonstration server's fixed
// screening parameters; a production exhibition server would expose these
// as upload form fields.
const (
	gridResolution = 2.0
	pointSize      = 1.0
)

type waypoint struct {
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	Z    float32 `json:"z"`
	Size float32 `json:"size"`
}

type pathResult struct {
	Waypoints []waypoint `json:"waypoints"`
}

type pipelineResult struct {
	Success   bool       `json:"success"`
	Waypoints int        `json:"waypoints"`
	Path      pathResult `json:"path"`
}

// runPipeline decodes an uploaded image, screens it, and orders the
// resulting dots into a single path: the same sequence spec §6 names for
// both the HTTP upload handler and the ImageSubmit websocket message.
func runPipeline(data []byte) (pipelineResult, error) {
	img, err := decodeImage(data)
	if err != nil {
		return pipelineResult{}, err
	}

	placement := screening.Placement{
		Width:     img.Width(),
		Height:    img.Height(),
		PositionX: 0,
		PositionY: 0,
		PPU:       1,
	}
	grid := screening.Grid{
		PointSize:   pointSize,
		OriginX:     0.5,
		OriginY:     0.5,
		Orientation: 0,
		Resolution:  gridResolution,
		Strict:      true,
	}

	buf := pack.NewPointBuffer()
	seed := uint64(time.Now().UnixNano())
	if _, err := plotcore.ScreenFM(img, placement, grid, seed, screening.DarkAreas, buf); err != nil {
		return pipelineResult{}, err
	}

	points := buf.PathPoints()
	settings := tour.Settings{
		Energy:       cost.FromPenalties(1, 1, 1),
		Penalty:      0.25,
		TwoOptPasses: 2,
	}
	order := plotcore.Optimize(points, settings)

	waypoints := make([]waypoint, len(order))
	for i, idx := range order {
		p := points[idx]
		waypoints[i] = waypoint{X: p.X, Y: p.Y, Z: 1.0, Size: p.Size}
	}

	return pipelineResult{
		Success:   true,
		Waypoints: len(waypoints),
		Path:      pathResult{Waypoints: waypoints},
	}, nil
}

// statusFor maps a pipeline error to the HTTP status codes spec §7 assigns
// to each error kind: decode/parameter errors are client mistakes, empty
// results are a retryable 422, anything else is unexpected.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrImageDecodeFailed), errors.Is(err, screening.ErrInvalidParameters):
		return http.StatusBadRequest
	case errors.Is(err, screening.ErrEmptyBounds), errors.Is(err, screening.ErrNoPointsEmitted):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
