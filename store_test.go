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

package imgstore_test

import (
	"path/filepath"
	"testing"

	"github.com/gpu-ninja/imgstore"
	"github.com/gpu-ninja/imgstore/imaging"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts imgstore.CreateOptions) (*imgstore.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.imgstore")
	s, err := imgstore.Create(path, opts, imaging.FakeCodec{})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, path
}

func defaultTestOptions() imgstore.CreateOptions {
	return imgstore.CreateOptions{
		MaxFiles: 10,
		ThumbRes: imgstore.Dimensions{Width: 64, Height: 64},
		SmallRes: imgstore.Dimensions{Width: 256, Height: 256},
	}
}

func TestCreateAndOpenRoundTrip(t *testing.T) {
	s, path := newTestStore(t, defaultTestOptions())
	require.NoError(t, s.Close())

	reopened, err := imgstore.Open(path, imaging.FakeCodec{})
	require.NoError(t, err)
	defer reopened.Close()

	h := reopened.Header()
	require.Equal(t, uint32(0), h.NumFiles)
	require.Equal(t, uint32(10), h.MaxFiles)
	require.Equal(t, imgstore.Dimensions{Width: 64, Height: 64}, h.ThumbRes)
	require.Equal(t, imgstore.Dimensions{Width: 256, Height: 256}, h.SmallRes)
	require.Len(t, reopened.Slots(), 10)
}

// Boundary 11: create with max_files == 0 or > 100000 fails MaxFiles; out
// of range axis values fail Resolutions.
func TestCreateRejectsInvalidOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.imgstore")

	_, err := imgstore.Create(path, imgstore.CreateOptions{
		MaxFiles: 0,
		ThumbRes: imgstore.Dimensions{Width: 64, Height: 64},
		SmallRes: imgstore.Dimensions{Width: 256, Height: 256},
	}, imaging.FakeCodec{})
	require.ErrorIs(t, err, imgstore.ErrMaxFiles)

	_, err = imgstore.Create(path, imgstore.CreateOptions{
		MaxFiles: 100001,
		ThumbRes: imgstore.Dimensions{Width: 64, Height: 64},
		SmallRes: imgstore.Dimensions{Width: 256, Height: 256},
	}, imaging.FakeCodec{})
	require.ErrorIs(t, err, imgstore.ErrMaxFiles)

	_, err = imgstore.Create(path, imgstore.CreateOptions{
		MaxFiles: 10,
		ThumbRes: imgstore.Dimensions{Width: 129, Height: 64},
		SmallRes: imgstore.Dimensions{Width: 256, Height: 256},
	}, imaging.FakeCodec{})
	require.ErrorIs(t, err, imgstore.ErrResolutions)

	_, err = imgstore.Create(path, imgstore.CreateOptions{
		MaxFiles: 10,
		ThumbRes: imgstore.Dimensions{Width: 64, Height: 64},
		SmallRes: imgstore.Dimensions{Width: 256, Height: 513},
	}, imaging.FakeCodec{})
	require.ErrorIs(t, err, imgstore.ErrResolutions)
}
