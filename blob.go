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
	"io"
	"os"
)

// appendBlob writes bytes at the current end of file and returns the
// absolute offset at which they were written. The blob region is never
// rewritten in place; every call grows the file.
func appendBlob(f *os.File, data []byte) (int64, error) {
	offset, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: seeking to end of store: %w", ErrIO, err)
	}

	if _, err := f.Write(data); err != nil {
		return 0, fmt.Errorf("%w: appending blob: %w", ErrIO, err)
	}

	return offset, nil
}

// readBlob reads exactly size bytes at offset.
func readBlob(f *os.File, offset int64, size uint32) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := f.ReadAt(buf, offset); err != nil {
		return nil, fmt.Errorf("%w: reading blob at %d: %w", ErrIO, offset, err)
	}
	return buf, nil
}

// copyBlob streams size bytes from srcOffset in src to the end of dst,
// without holding the whole blob in memory, and returns the offset it was
// written at. Used by GC to carry already-materialised derived images
// forward into the rebuilt store verbatim, rather than re-decoding and
// re-resizing them.
func copyBlob(src, dst *os.File, srcOffset int64, size uint32) (int64, error) {
	dstOffset, err := dst.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: seeking to end of store: %w", ErrIO, err)
	}

	r := io.LimitReader(newOffsetReader(src, srcOffset), int64(size))
	w := newOffsetWriter(dst, dstOffset)
	if _, err := io.Copy(w, r); err != nil {
		return 0, fmt.Errorf("%w: copying blob: %w", ErrIO, err)
	}

	return dstOffset, nil
}
