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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/webp"
)

// ErrImageDecodeFailed is returned when uploaded bytes match none of the
// recognized formats. The core never sees raw bytes, so this sentinel lives
// here rather than in screening.
var ErrImageDecodeFailed = errors.New("cmd: image bytes not a recognized format")

// grayImage adapts a decoded image.Image to screening.ImageView: nearest-
// neighbor sampling over an 8-bit single-channel buffer.
type grayImage struct {
	pix           []uint8
	width, height int
}

func (g *grayImage) Width() int  { return g.width }
func (g *grayImage) Height() int { return g.height }

// SampleNearest maps normalized (u, v) in [0, 1] to the nearest source
// pixel, clamping at the edges.
func (g *grayImage) SampleNearest(u, v float32) uint8 {
	x := int(u * float32(g.width))
	y := int(v * float32(g.height))
	if x < 0 {
		x = 0
	} else if x >= g.width {
		x = g.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.height {
		y = g.height - 1
	}
	return g.pix[y*g.width+x]
}

// decodeImage probes PNG, then JPEG, then WebP, and downsamples whichever
// one decodes to an 8-bit single-channel grayImage.
func decodeImage(data []byte) (*grayImage, error) {
	img, err := decodeAny(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecodeFailed, err)
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	width := bounds.Dx()
	height := bounds.Dy()
	pix := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		copy(pix[y*width:(y+1)*width], row)
	}

	return &grayImage{pix: pix, width: width, height: height}, nil
}

func decodeAny(data []byte) (image.Image, error) {
	if img, err := png.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := jpeg.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	return nil, errors.New("bytes matched none of PNG, JPEG, WebP")
}
