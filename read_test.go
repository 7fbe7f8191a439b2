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
	"testing"

	"github.com/gpu-ninja/imgstore"
	"github.com/gpu-ninja/imgstore/imaging"
	"github.com/stretchr/testify/require"
)

// S1: read at small resolution preserves aspect ratio and never exceeds
// the configured bound on either axis, touching it on at least one.
func TestReadMaterialisesAspectPreservingSmall(t *testing.T) {
	s, _ := newTestStore(t, defaultTestOptions())

	data := imaging.NewFakeImageBytes(1024, 768, []byte("A"))
	require.NoError(t, s.Insert("pic1", data))

	out, err := s.Read("pic1", imgstore.ResSmall)
	require.NoError(t, err)

	img, err := (imaging.FakeCodec{}).Decode(out)
	require.NoError(t, err)
	w, h := img.Dimensions()

	require.LessOrEqual(t, w, 256)
	require.LessOrEqual(t, h, 256)
	require.True(t, w == 256 || h == 256)
}

// Property 3: a second read at the same derived resolution observes the
// already-materialised offset and does not grow the file further.
func TestReadIsIdempotentForDerivedResolutions(t *testing.T) {
	s, path := newTestStore(t, defaultTestOptions())

	data := imaging.NewFakeImageBytes(1024, 768, []byte("A"))
	require.NoError(t, s.Insert("pic1", data))

	_, err := s.Read("pic1", imgstore.ResSmall)
	require.NoError(t, err)

	sizeAfterFirstRead := fileSize(t, path)

	slot := findSlot(t, s, "pic1")
	require.True(t, slot.Res[imgstore.ResSmall].Materialised())
	offsetAfterFirst := slot.Res[imgstore.ResSmall].Offset

	_, err = s.Read("pic1", imgstore.ResSmall)
	require.NoError(t, err)

	sizeAfterSecondRead := fileSize(t, path)
	require.Equal(t, sizeAfterFirstRead, sizeAfterSecondRead)

	slot = findSlot(t, s, "pic1")
	require.Equal(t, offsetAfterFirst, slot.Res[imgstore.ResSmall].Offset)
}

// Property 12: reading a non-existent id fails FileNotFound.
func TestReadOfMissingIDFails(t *testing.T) {
	s, _ := newTestStore(t, defaultTestOptions())

	_, err := s.Read("nope", imgstore.ResOrig)
	require.ErrorIs(t, err, imgstore.ErrFileNotFound)
}

func findSlot(t *testing.T, s *imgstore.Store, imgID string) imgstore.Slot {
	t.Helper()
	for _, slot := range s.Slots() {
		if slot.ImgID == imgID {
			return slot
		}
	}
	t.Fatalf("slot %q not found", imgID)
	return imgstore.Slot{}
}
