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

// findByID returns the index of the first occupied slot whose id matches,
// bounded to the full id capacity (Open Question 1, resolved).
func findByID(slots []Slot, id string) (int, bool) {
	id = truncateID(id)
	for i, s := range slots {
		if s.Valid() && s.ImgID == id {
			return i, true
		}
	}
	return 0, false
}

// findFree returns the lowest-index empty slot, if any.
func findFree(slots []Slot) (int, bool) {
	for i, s := range slots {
		if !s.Valid() {
			return i, true
		}
	}
	return 0, false
}

func truncateID(id string) string {
	if len(id) > maxImgID {
		return id[:maxImgID]
	}
	return id
}

// markEmpty flips a slot's validity without touching any other field.
func markEmpty(slots []Slot, index int) {
	slots[index].State = SlotEmpty
}

// markValid flips a slot's validity to occupied.
func markValid(slots []Slot, index int) {
	slots[index].State = SlotOccupied
}

func validateID(id string) error {
	if len(id) == 0 || len(id) > maxImgID {
		return fmt.Errorf("%w: id length %d", ErrInvalidImgID, len(id))
	}
	return nil
}
