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

// Property 7: every mutation keeps num_files equal to the count of
// NON_EMPTY slots and strictly increases version.
func TestDeleteUpdatesNumFilesAndVersion(t *testing.T) {
	s, _ := newTestStore(t, defaultTestOptions())

	require.NoError(t, s.Insert("pic1", imaging.NewFakeImageBytes(100, 100, []byte("1"))))
	versionAfterInsert := s.Header().Version

	require.NoError(t, s.Delete("pic1"))

	require.Equal(t, uint32(0), s.Header().NumFiles)
	require.Greater(t, s.Header().Version, versionAfterInsert)
	require.Equal(t, countOccupied(s), int(s.Header().NumFiles))
}

func TestDeleteOfMissingIDFails(t *testing.T) {
	s, _ := newTestStore(t, defaultTestOptions())

	err := s.Delete("nope")
	require.ErrorIs(t, err, imgstore.ErrFileNotFound)
}

func countOccupied(s *imgstore.Store) int {
	n := 0
	for _, slot := range s.Slots() {
		if slot.Valid() {
			n++
		}
	}
	return n
}
