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
	"fmt"
)

// blobCacheKey is the cache.LoadingCache key for a materialised blob. The
// offset is part of the key so a slot that gets reallocated (delete then
// insert reusing the same index) can never be served a stale cache entry
// under the old offset.
type blobCacheKey struct {
	offset int64
	size   uint32
}

// Read materialises (if necessary) and returns the bytes of img_id at the
// given resolution.
func (s *Store) Read(imgID string, res Resolution) ([]byte, error) {
	if res != ResThumb && res != ResSmall && res != ResOrig {
		return nil, fmt.Errorf("%w: resolution %v", ErrInvalidArgument, res)
	}

	index, ok := findByID(s.slots, imgID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, imgID)
	}

	if !s.slots[index].Res[res].Materialised() {
		if err := s.materialise(index, res); err != nil {
			return nil, err
		}
	}

	derived := s.slots[index].Res[res]
	key := blobCacheKey{offset: int64(derived.Offset), size: derived.Size}

	v, err := s.blobCache.Get(key)
	if err != nil {
		return nil, err
	}

	cached := v.([]byte)
	out := make([]byte, len(cached))
	copy(out, cached)

	return out, nil
}
