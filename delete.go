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

import "fmt"

// Delete invalidates the slot for imgID. No blob bytes are touched; they
// remain on disk as garbage until GC rebuilds the store.
func (s *Store) Delete(imgID string) error {
	index, ok := findByID(s.slots, imgID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFileNotFound, imgID)
	}

	markEmpty(s.slots, index)

	if err := writeSlot(s.f, index, s.slots[index]); err != nil {
		return err
	}

	s.header.NumFiles--
	s.header.Version++

	if err := writeHeader(s.f, s.header); err != nil {
		return err
	}

	return nil
}
