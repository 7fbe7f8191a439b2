/* SPDX-License-Identifier: Apache-2.0
 *
 * Copyright 2023 Damian Peckett <damian@peckett>.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"
)

// JPEGCodec is the default Codec, decoding/encoding through the standard
// library's image/jpeg and resizing through golang.org/x/image/draw.
type JPEGCodec struct {
	// Quality is passed straight through to jpeg.Encode's Options.
	Quality int
}

// NewJPEGCodec returns a JPEGCodec with a sensible default quality.
func NewJPEGCodec() *JPEGCodec {
	return &JPEGCodec{Quality: 90}
}

type goImage struct {
	img image.Image
}

func (g *goImage) Dimensions() (width, height int) {
	b := g.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *JPEGCodec) Decode(data []byte) (Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding jpeg: %w", err)
	}
	return &goImage{img: img}, nil
}

func (c *JPEGCodec) Resize(img Image, factor float64) (Image, error) {
	gi, ok := img.(*goImage)
	if !ok {
		return nil, fmt.Errorf("resize: unexpected image type %T", img)
	}

	srcBounds := gi.img.Bounds()
	dstWidth := int(float64(srcBounds.Dx()) * factor)
	dstHeight := int(float64(srcBounds.Dy()) * factor)
	if dstWidth < 1 {
		dstWidth = 1
	}
	if dstHeight < 1 {
		dstHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), gi.img, srcBounds, draw.Over, nil)

	return &goImage{img: dst}, nil
}

func (c *JPEGCodec) Encode(img Image) ([]byte, error) {
	gi, ok := img.(*goImage)
	if !ok {
		return nil, fmt.Errorf("encode: unexpected image type %T", img)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, gi.img, &jpeg.Options{Quality: c.Quality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}

	return buf.Bytes(), nil
}
