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

// dedup runs the identifier-uniqueness check and content-addressed offset
// sharing for the candidate slot at index, before any blob has been written
// for it. It mutates slots[index]'s Res entries in place when a SHA match
// is found, and leaves slots[index].Res[ResOrig].Offset at 0 when the
// caller must append a fresh original blob.
func dedup(slots []Slot, index int) error {
	candidate := slots[index]

	donor := -1
	for i, s := range slots {
		if i == index || !s.Valid() {
			continue
		}

		if s.ImgID == candidate.ImgID {
			return fmt.Errorf("%w: %q", ErrDuplicateID, candidate.ImgID)
		}

		if donor == -1 && s.SHA == candidate.SHA {
			donor = i
		}
	}

	if donor == -1 {
		slots[index].Res[ResOrig].Offset = 0
		return nil
	}

	slots[index].Res = slots[donor].Res
	return nil
}
