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

package imgstore

import (
	"crypto/sha256"
	"fmt"
)

// Insert stores data under imgID, deduplicating by content hash against
// any other image already present. Returns ErrDuplicateID if imgID is
// already in use, ErrFullImgStore if the store is at capacity.
func (s *Store) Insert(imgID string, data []byte) error {
	if err := validateID(imgID); err != nil {
		return err
	}

	if s.header.NumFiles >= s.header.MaxFiles {
		return fmt.Errorf("%w", ErrFullImgStore)
	}

	index, ok := findFree(s.slots)
	if !ok {
		return fmt.Errorf("%w", ErrFullImgStore)
	}

	candidate := Slot{
		State: SlotEmpty,
		ImgID: truncateID(imgID),
		SHA:   sha256.Sum256(data),
	}
	candidate.Res[ResOrig].Size = uint32(len(data))
	s.slots[index] = candidate

	if err := dedup(s.slots, index); err != nil {
		// Dedup failed without mutating any other slot; the candidate was
		// never marked valid, so it is reset to an empty slot for reuse.
		s.slots[index] = Slot{}
		return err
	}

	if !s.slots[index].Res[ResOrig].Materialised() {
		s.slots[index].Res[ResThumb] = DerivedState{}
		s.slots[index].Res[ResSmall] = DerivedState{}

		offset, err := appendBlob(s.f, data)
		if err != nil {
			return err
		}

		s.slots[index].Res[ResOrig] = DerivedState{Offset: uint64(offset), Size: uint32(len(data))}
	}

	markValid(s.slots, index)

	decoded, err := s.codec.Decode(data)
	if err != nil {
		markEmpty(s.slots, index)
		return fmt.Errorf("%w: decoding inserted image: %w", ErrImgLib, err)
	}
	w, h := decoded.Dimensions()
	s.slots[index].OrigRes = OrigDimensions{Width: uint32(w), Height: uint32(h)}

	s.header.Version++
	s.header.NumFiles++

	if err := writeHeader(s.f, s.header); err != nil {
		return err
	}

	if err := writeSlot(s.f, index, s.slots[index]); err != nil {
		return err
	}

	return nil
}
