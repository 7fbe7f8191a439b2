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
	"encoding/binary"
	"fmt"
)

var fakeMagic = [4]byte{'F', 'I', 'M', 'G'}

// fakeImage is a deterministic, pixel-free stand-in for a decoded image.
type fakeImage struct {
	width, height int
	payload       []byte
}

func (f *fakeImage) Dimensions() (width, height int) {
	return f.width, f.height
}

// FakeCodec implements Codec without touching real pixels or a real JPEG
// codec: "encoded" bytes are a small fixed header (magic, width, height)
// followed by an opaque payload carried through unchanged. Two images with
// different payloads never collide, and resizing only changes the
// width/height fields, keeping the format cheap to assert on in tests.
type FakeCodec struct{}

func (FakeCodec) Decode(data []byte) (Image, error) {
	if len(data) < 12 || [4]byte{data[0], data[1], data[2], data[3]} != fakeMagic {
		return nil, fmt.Errorf("fake codec: not a fake image")
	}

	return &fakeImage{
		width:   int(binary.BigEndian.Uint32(data[4:8])),
		height:  int(binary.BigEndian.Uint32(data[8:12])),
		payload: append([]byte(nil), data[12:]...),
	}, nil
}

func (FakeCodec) Resize(img Image, factor float64) (Image, error) {
	fi, ok := img.(*fakeImage)
	if !ok {
		return nil, fmt.Errorf("fake codec: unexpected image type %T", img)
	}

	w := int(float64(fi.width) * factor)
	h := int(float64(fi.height) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return &fakeImage{width: w, height: h, payload: fi.payload}, nil
}

func (FakeCodec) Encode(img Image) ([]byte, error) {
	fi, ok := img.(*fakeImage)
	if !ok {
		return nil, fmt.Errorf("fake codec: unexpected image type %T", img)
	}

	out := make([]byte, 12+len(fi.payload))
	copy(out[0:4], fakeMagic[:])
	binary.BigEndian.PutUint32(out[4:8], uint32(fi.width))
	binary.BigEndian.PutUint32(out[8:12], uint32(fi.height))
	copy(out[12:], fi.payload)

	return out, nil
}

// NewFakeImageBytes builds a "fake JPEG" with the given dimensions and an
// opaque payload that differentiates otherwise-identical-sized images, for
// use as test fixtures.
func NewFakeImageBytes(width, height int, payload []byte) []byte {
	out := make([]byte, 12+len(payload))
	copy(out[0:4], fakeMagic[:])
	binary.BigEndian.PutUint32(out[4:8], uint32(width))
	binary.BigEndian.PutUint32(out[8:12], uint32(height))
	copy(out[12:], payload)
	return out
}
