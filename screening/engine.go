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

import (
	"github.com/ravlan/plotcore/lanes"
	"github.com/ravlan/plotcore/pack"
	"github.com/ravlan/plotcore/rng"
)

// Progress reports how much work a Generate call did.
type Progress struct {
	// Finished is true once every grid cell within bounds has been visited.
	Finished bool
	// Delta is the number of cells visited by this call.
	Delta int
}

// Engine is a lazy, resumable producer of screened dots. It walks the grid
// cells within its Bounds in raster order (i fastest, j outer), L cells at a
// time, and emits a masked push into the caller's pack.PointBuffer for every
// chunk that clears its per-lane random threshold.
type Engine struct {
	placement Placement
	grid      Grid
	bounds    Bounds
	image     ImageView
	mode      Mode
	prng      *rng.Xoroshiro128SS

	cursor int // next linear cell index to visit, in [0, total]
	total  int // iMax-iMin+1 * jMax-jMin+1
	width  int // iMax-iMin+1, the row stride
}

// NewEngine prepares an Engine for one screening run. An error propagates
// straight from PrepareBounds: a degenerate placement or grid never starts
// producing cells.
func NewEngine(image ImageView, placement Placement, grid Grid, seed uint64, mode Mode) (*Engine, error) {
	bounds, err := PrepareBounds(placement, grid)
	if err != nil {
		return nil, err
	}

	width := bounds.IMax - bounds.IMin + 1
	height := bounds.JMax - bounds.JMin + 1

	return &Engine{
		placement: placement,
		grid:      grid,
		bounds:    bounds,
		image:     image,
		mode:      mode,
		prng:      rng.NewXoroshiro128SS(seed),
		cursor:    0,
		total:     width * height,
		width:     width,
	}, nil
}

// Generate visits up to count grid cells, appending every dot that clears
// its random threshold into buf, and returns how far it got.
func (e *Engine) Generate(count int, buf *pack.PointBuffer) (Progress, error) {
	lanesWidth := lanes.MaxLanes[float32]()
	processed := 0

	for processed < count && e.cursor < e.total {
		remaining := e.total - e.cursor
		chunk := min(lanesWidth, remaining, count-processed)

		e.processChunk(chunk, buf)

		e.cursor += chunk
		processed += chunk
	}

	return Progress{Finished: e.cursor >= e.total, Delta: processed}, nil
}

// processChunk visits the `chunk` grid cells starting at e.cursor: it
// transforms them to world space, checks containment against the image's
// world-space bounding box, samples the image, draws a threshold per lane,
// and pushes every lane whose mask bit survives all three gates.
func (e *Engine) processChunk(chunk int, buf *pack.PointBuffer) {
	lanesWidth := lanes.MaxLanes[float32]()

	localX := make([]float32, lanesWidth)
	localY := make([]float32, lanesWidth)
	for lane := 0; lane < chunk; lane++ {
		idx := e.cursor + lane
		i := e.bounds.IMin + idx%e.width
		j := e.bounds.JMin + idx/e.width
		localX[lane] = float32(i) * e.grid.Resolution
		localY[lane] = float32(j) * e.grid.Resolution
	}

	cos := lanes.Const[float32](e.bounds.GridToWorld.cos)
	sin := lanes.Const[float32](e.bounds.GridToWorld.sin)
	tx := lanes.Const[float32](e.bounds.GridToWorld.tx)
	ty := lanes.Const[float32](e.bounds.GridToWorld.ty)

	lx := lanes.Load(localX)
	ly := lanes.Load(localY)

	worldX := lanes.Add(lanes.Sub(lanes.Mul(cos, lx), lanes.Mul(sin, ly)), tx)
	worldY := lanes.Add(lanes.Add(lanes.Mul(sin, lx), lanes.Mul(cos, ly)), ty)

	xMin := lanes.Const[float32](e.bounds.WorldXMin)
	xMax := lanes.Const[float32](e.bounds.WorldXMax)
	yMin := lanes.Const[float32](e.bounds.WorldYMin)
	yMax := lanes.Const[float32](e.bounds.WorldYMax)

	insideX := lanes.MaskAnd(lanes.GreaterEqual(worldX, xMin), lanes.LessEqual(worldX, xMax))
	insideY := lanes.MaskAnd(lanes.GreaterEqual(worldY, yMin), lanes.LessEqual(worldY, yMax))
	containment := lanes.MaskAnd(insideX, insideY)
	tail := lanes.TailMask[float32](chunk)
	mask := lanes.MaskAnd(containment, tail)

	if lanes.CountTrue(mask) == 0 {
		return
	}

	wx := worldX.Data()
	wy := worldY.Data()

	imgX := e.bounds.WorldXMin
	imgW := e.bounds.WorldXMax - e.bounds.WorldXMin
	imgY := e.bounds.WorldYMin
	imgH := e.bounds.WorldYMax - e.bounds.WorldYMin

	finalBits := make([]bool, lanesWidth)
	for lane := 0; lane < chunk; lane++ {
		t := e.prng.NextFloat32() * 255
		if !mask.GetBit(lane) {
			continue
		}

		u := clamp01((wx[lane] - imgX) / imgW)
		v := clamp01((wy[lane] - imgY) / imgH)
		sample := float32(e.image.SampleNearest(u, v))

		switch e.mode {
		case BrightAreas:
			finalBits[lane] = sample >= t
		case DarkAreas:
			finalBits[lane] = t > sample
		}
	}

	finalMask := boolsToFloatMask(finalBits)
	pts := pack.PointPack{Xs: worldX, Ys: worldY}
	buf.PushMasked(pts, e.grid.PointSize, finalMask)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// boolsToFloatMask builds a lanes.Mask[float32] from plain booleans. There
// is no public Mask constructor from raw bools, so this goes through a
// comparison the same way the rest of the package does.
func boolsToFloatMask(bits []bool) pack.Mask {
	flags := make([]float32, len(bits))
	for i, b := range bits {
		if b {
			flags[i] = 1
		}
	}
	return lanes.GreaterThan(lanes.Load(flags), lanes.Zero[float32]())
}
