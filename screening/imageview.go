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

// ImageView is the minimal single-channel image contract the engine samples
// against. Width and Height are in pixels; SampleNearest takes normalized
// image-space coordinates in [0,1]x[0,1] and returns an 8-bit intensity.
type ImageView interface {
	Width() int
	Height() int
	SampleNearest(u, v float32) uint8
}
