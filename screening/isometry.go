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

// isometry is a rigid 2-D transform: a rotation followed by a translation.
// It is hand-rolled rather than pulled from a linear-algebra dependency,
// since a 2x2 rotation plus translation is cheap to carry as four floats and
// the grid-to-world map never needs anything a general matrix library would
// add (scale, shear, 3-D).
type isometry struct {
	cos, sin float32
	tx, ty   float32
}

// newIsometry builds the grid-to-world map T_g = Translation(origin) ∘
// Rotation(orientation).
func newIsometry(originX, originY, orientation float32) isometry {
	return isometry{
		cos: float32(math.Cos(float64(orientation))),
		sin: float32(math.Sin(float64(orientation))),
		tx:  originX,
		ty:  originY,
	}
}

// Apply transforms a local grid-space point into world space.
func (iso isometry) Apply(x, y float32) (wx, wy float32) {
	wx = iso.cos*x - iso.sin*y + iso.tx
	wy = iso.sin*x + iso.cos*y + iso.ty
	return wx, wy
}

// Invert returns the world-to-grid map. For a rotation R and translation t,
// the inverse of p ↦ R·p + t is p ↦ Rᵀ·(p − t) = Rᵀ·p − Rᵀ·t. Rᵀ for a 2x2
// rotation matrix [[cos,-sin],[sin,cos]] is [[cos,sin],[-sin,cos]], which is
// exactly the rotation by -orientation, so the inverse's cos stays the same
// and its sin negates; the new translation is -Rᵀ·t.
func (iso isometry) Invert() isometry {
	invCos := iso.cos
	invSin := -iso.sin
	// -Rᵀ·t with Rᵀ = [[invCos,-invSin],[invSin,invCos]] = [[cos,sin],[-sin,cos]]
	ix := invCos*(-iso.tx) - invSin*(-iso.ty)
	iy := invSin*(-iso.tx) + invCos*(-iso.ty)
	return isometry{cos: invCos, sin: invSin, tx: ix, ty: iy}
}
