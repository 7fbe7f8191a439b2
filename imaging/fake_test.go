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
	"testing"

	"github.com/gpu-ninja/imgstore/imaging"
	"github.com/stretchr/testify/require"
)

func TestFakeCodecRoundTrip(t *testing.T) {
	codec := imaging.FakeCodec{}

	data := imaging.NewFakeImageBytes(800, 600, []byte("payload"))

	img, err := codec.Decode(data)
	require.NoError(t, err)

	w, h := img.Dimensions()
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)

	resized, err := codec.Resize(img, 0.5)
	require.NoError(t, err)
	w, h = resized.Dimensions()
	require.Equal(t, 400, w)
	require.Equal(t, 300, h)

	encoded, err := codec.Encode(resized)
	require.NoError(t, err)

	roundTripped, err := codec.Decode(encoded)
	require.NoError(t, err)
	w, h = roundTripped.Dimensions()
	require.Equal(t, 400, w)
	require.Equal(t, 300, h)
}

func TestFakeCodecRejectsForeignBytes(t *testing.T) {
	codec := imaging.FakeCodec{}

	_, err := codec.Decode([]byte("not a fake image"))
	require.Error(t, err)
}
