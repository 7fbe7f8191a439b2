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

package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/gpu-ninja/imgstore/imaging"
	"github.com/stretchr/testify/require"
)

func generateTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestJPEGCodecDecodeDimensions(t *testing.T) {
	codec := imaging.NewJPEGCodec()

	data := generateTestJPEG(t, 1024, 768)

	img, err := codec.Decode(data)
	require.NoError(t, err)

	w, h := img.Dimensions()
	require.Equal(t, 1024, w)
	require.Equal(t, 768, h)
}

func TestJPEGCodecResizeShrinksAndPreservesAspect(t *testing.T) {
	codec := imaging.NewJPEGCodec()

	data := generateTestJPEG(t, 1024, 768)

	img, err := codec.Decode(data)
	require.NoError(t, err)

	resized, err := codec.Resize(img, 0.25)
	require.NoError(t, err)

	w, h := resized.Dimensions()
	require.Equal(t, 256, w)
	require.Equal(t, 192, h)

	encoded, err := codec.Encode(resized)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	roundTripped, err := codec.Decode(encoded)
	require.NoError(t, err)
	w, h = roundTripped.Dimensions()
	require.Equal(t, 256, w)
	require.Equal(t, 192, h)
}
