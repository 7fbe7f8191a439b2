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
	"os"

	"github.com/gpu-ninja/imgstore/imaging"
	"github.com/natefinch/atomic"
)

// openReadOnly opens an existing store for reading only, used by GC so the
// source file is never mutated by the rebuild.
func openReadOnly(path string, codec imaging.Codec) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: opening store file: %w", ErrIO, err)
	}

	header, err := readHeader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	slots, err := readSlotTable(f, header.MaxFiles)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Store{f: f, header: header, slots: slots, codec: codec}, nil
}

// GC rebuilds storePath into a fresh file at tmpPath containing only
// reachable bytes, then atomically swaps it into place. The source store
// is opened read-only and is never mutated; the rebuild happens entirely
// in tmpPath (Open Question 4, resolved: a single atomic replace, never an
// exposed remove-then-rename window).
func GC(storePath, tmpPath string, codec imaging.Codec) error {
	src, err := openReadOnly(storePath, codec)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := Create(tmpPath, CreateOptions{
		MaxFiles: src.header.MaxFiles,
		ThumbRes: src.header.ThumbRes,
		SmallRes: src.header.SmallRes,
	}, codec)
	if err != nil {
		return err
	}

	if err := rebuild(src, dst); err != nil {
		_ = dst.Close()
		return err
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: closing rebuilt store: %w", ErrIO, err)
	}

	if err := atomic.ReplaceFile(tmpPath, storePath); err != nil {
		return fmt.Errorf("%w: swapping rebuilt store into place: %w", ErrIO, err)
	}

	return nil
}

// rebuild copies every occupied slot of src into dst. Derived resolutions
// src had already materialised are carried forward byte-for-byte via
// copyBlob; derived resolutions src never computed are left unmaterialised
// in dst too, so GC never does more decode/resize work than src already
// paid for.
func rebuild(src, dst *Store) error {
	for _, slot := range src.slots {
		if !slot.Valid() {
			continue
		}

		orig := slot.Res[ResOrig]
		data, err := readBlob(src.f, int64(orig.Offset), orig.Size)
		if err != nil {
			return err
		}

		if err := dst.Insert(slot.ImgID, data); err != nil {
			return err
		}
		newIndex := int(dst.header.NumFiles) - 1

		for _, res := range []Resolution{ResThumb, ResSmall} {
			derived := slot.Res[res]
			if !derived.Materialised() {
				continue
			}

			newOffset, err := copyBlob(src.f, dst.f, int64(derived.Offset), derived.Size)
			if err != nil {
				return err
			}

			dst.slots[newIndex].Res[res] = DerivedState{Offset: uint64(newOffset), Size: derived.Size}
			if err := writeSlot(dst.f, newIndex, dst.slots[newIndex]); err != nil {
				return err
			}
		}
	}

	return nil
}
