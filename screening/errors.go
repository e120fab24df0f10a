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

import "errors"

var (
	// ErrEmptyBounds is returned when an image has zero area, or lies
	// entirely outside the grid's coverage, leaving no (i,j) cell to visit.
	ErrEmptyBounds = errors.New("screening: bounds are empty")

	// ErrNoPointsEmitted is returned when a full screening run visited at
	// least one cell but never cleared a random threshold.
	ErrNoPointsEmitted = errors.New("screening: no points emitted")

	// ErrInvalidParameters is returned for non-finite or non-positive
	// scalars in a Placement or Grid.
	ErrInvalidParameters = errors.New("screening: invalid parameters")
)
