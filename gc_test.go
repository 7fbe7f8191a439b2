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

// Property 4: gc on a store with no deletions and no derived resolutions
// is a structural identity modulo blob offsets (which do not shift here,
// since the header+table size delta is zero) and slot order.
func TestGCOnUntouchedStoreIsIdentity(t *testing.T) {
	s, path := newTestStore(t, defaultTestOptions())

	require.NoError(t, s.Insert("pic1", imaging.NewFakeImageBytes(100, 100, []byte("1"))))
	require.NoError(t, s.Insert("pic2", imaging.NewFakeImageBytes(200, 200, []byte("2"))))

	sizeBefore := fileSize(t, path)
	slotsBefore := s.Slots()
	require.NoError(t, s.Close())

	tmpPath := filepath.Join(t.TempDir(), "gc.imgstore")
	require.NoError(t, imgstore.GC(path, tmpPath, imaging.FakeCodec{}))

	sizeAfter := fileSize(t, path)
	require.Equal(t, sizeBefore, sizeAfter)

	reopened, err := imgstore.Open(path, imaging.FakeCodec{})
	require.NoError(t, err)
	defer reopened.Close()

	slotsAfter := reopened.Slots()
	require.Equal(t, len(slotsBefore), len(slotsAfter))
	for i := range slotsBefore {
		require.Equal(t, slotsBefore[i].ImgID, slotsAfter[i].ImgID)
		require.Equal(t, slotsBefore[i].Res[imgstore.ResOrig], slotsAfter[i].Res[imgstore.ResOrig])
	}
}

// S4: insert, materialise a derived resolution, delete, gc: the resulting
// file is the same size as a freshly created empty store with the same
// capacity.
func TestGCReclaimsDeletedSpace(t *testing.T) {
	s, path := newTestStore(t, defaultTestOptions())

	require.NoError(t, s.Insert("pic1", imaging.NewFakeImageBytes(1024, 768, []byte("A"))))
	_, err := s.Read("pic1", imgstore.ResThumb)
	require.NoError(t, err)
	require.NoError(t, s.Delete("pic1"))
	require.NoError(t, s.Close())

	tmpPath := filepath.Join(t.TempDir(), "gc.imgstore")
	require.NoError(t, imgstore.GC(path, tmpPath, imaging.FakeCodec{}))

	emptyPath := filepath.Join(t.TempDir(), "empty.imgstore")
	empty, err := imgstore.Create(emptyPath, defaultTestOptions(), imaging.FakeCodec{})
	require.NoError(t, err)
	require.NoError(t, empty.Close())

	require.Equal(t, fileSize(t, emptyPath), fileSize(t, path))
}

// Property 8 / S6: after gc, a read at every previously materialised
// resolution returns byte-equal bytes to what it returned before gc, and
// the file never grows.
func TestGCPreservesMaterialisedResolutions(t *testing.T) {
	s, path := newTestStore(t, defaultTestOptions())

	require.NoError(t, s.Insert("pic1", imaging.NewFakeImageBytes(1024, 768, []byte("A"))))

	thumbBefore, err := s.Read("pic1", imgstore.ResThumb)
	require.NoError(t, err)
	smallBefore, err := s.Read("pic1", imgstore.ResSmall)
	require.NoError(t, err)

	sizeBefore := fileSize(t, path)
	require.NoError(t, s.Close())

	tmpPath := filepath.Join(t.TempDir(), "gc.imgstore")
	require.NoError(t, imgstore.GC(path, tmpPath, imaging.FakeCodec{}))

	require.LessOrEqual(t, fileSize(t, path), sizeBefore)

	reopened, err := imgstore.Open(path, imaging.FakeCodec{})
	require.NoError(t, err)
	defer reopened.Close()

	thumbAfter, err := reopened.Read("pic1", imgstore.ResThumb)
	require.NoError(t, err)
	smallAfter, err := reopened.Read("pic1", imgstore.ResSmall)
	require.NoError(t, err)

	require.Equal(t, thumbBefore, thumbAfter)
	require.Equal(t, smallBefore, smallAfter)
}
