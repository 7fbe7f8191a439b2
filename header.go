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
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// rawHeader is the bit-exact on-disk header record. Field order and widths
// are part of the wire format; do not reorder or resize.
type rawHeader struct {
	Name       [maxStoreName + 1]byte
	Version    uint32
	NumFiles   uint32
	MaxFiles   uint32
	ResResized [2 * (nbRes - 1)]uint16 // thumb_w, thumb_h, small_w, small_h
	Unused32   uint32
	Unused64   uint64
}

var headerSize = binary.Size(rawHeader{})

// Header is the in-memory, ergonomic view of the store header.
type Header struct {
	Name     string
	Version  uint32
	NumFiles uint32
	MaxFiles uint32
	ThumbRes Dimensions
	SmallRes Dimensions
}

func (h Header) toRaw() rawHeader {
	var raw rawHeader
	copy(raw.Name[:], h.Name)
	raw.Version = h.Version
	raw.NumFiles = h.NumFiles
	raw.MaxFiles = h.MaxFiles
	raw.ResResized = [2 * (nbRes - 1)]uint16{
		h.ThumbRes.Width, h.ThumbRes.Height,
		h.SmallRes.Width, h.SmallRes.Height,
	}
	return raw
}

func fromRawHeader(raw rawHeader) Header {
	return Header{
		Name:     cStringToGo(raw.Name[:]),
		Version:  raw.Version,
		NumFiles: raw.NumFiles,
		MaxFiles: raw.MaxFiles,
		ThumbRes: Dimensions{Width: raw.ResResized[0], Height: raw.ResResized[1]},
		SmallRes: Dimensions{Width: raw.ResResized[2], Height: raw.ResResized[3]},
	}
}

// readHeader reads and validates the header record at offset 0.
func readHeader(f *os.File) (Header, error) {
	var raw rawHeader
	if _, err := f.Seek(0, 0); err != nil {
		return Header{}, fmt.Errorf("%w: seeking to header: %w", ErrIO, err)
	}

	if err := binary.Read(f, binary.LittleEndian, &raw); err != nil {
		return Header{}, fmt.Errorf("%w: reading header: %w", ErrIO, err)
	}

	if raw.MaxFiles == 0 || raw.MaxFiles > maxMaxFiles {
		return Header{}, fmt.Errorf("%w: max_files %d out of bounds", ErrMalformedStore, raw.MaxFiles)
	}

	return fromRawHeader(raw), nil
}

// writeHeader performs a single positioned write of the header record.
func writeHeader(f *os.File, h Header) error {
	raw := h.toRaw()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &raw); err != nil {
		return fmt.Errorf("%w: encoding header: %w", ErrIO, err)
	}

	if _, err := f.WriteAt(buf.Bytes(), 0); err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrIO, err)
	}

	return nil
}

func cStringToGo(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
