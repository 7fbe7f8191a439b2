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

	"github.com/goburrow/cache"
	"github.com/gpu-ninja/imgstore/imaging"
)

const (
	// maxCachedBlobs bounds how many materialised blobs the reader keeps
	// warm. A blob is at most a few hundred KB, so this is a few tens of MB
	// of resident cache in the worst case.
	maxCachedBlobs = 256
)

// CreateOptions configures a freshly created store. There is no separate
// config layer: the on-disk header is the store's configuration.
type CreateOptions struct {
	MaxFiles uint32
	ThumbRes Dimensions
	SmallRes Dimensions
}

// DefaultCreateOptions mirrors the CLI's defaults: 10 files, 64x64
// thumbnails, 256x256 small images.
func DefaultCreateOptions() CreateOptions {
	return CreateOptions{
		MaxFiles: 10,
		ThumbRes: Dimensions{Width: 64, Height: 64},
		SmallRes: Dimensions{Width: 256, Height: 256},
	}
}

func (o CreateOptions) validate() error {
	if o.MaxFiles == 0 || o.MaxFiles > maxMaxFiles {
		return fmt.Errorf("%w: max_files %d", ErrMaxFiles, o.MaxFiles)
	}

	if o.ThumbRes.Width == 0 || o.ThumbRes.Width > maxThumbAxis ||
		o.ThumbRes.Height == 0 || o.ThumbRes.Height > maxThumbAxis {
		return fmt.Errorf("%w: thumb_res %dx%d", ErrResolutions, o.ThumbRes.Width, o.ThumbRes.Height)
	}

	if o.SmallRes.Width == 0 || o.SmallRes.Width > maxSmallAxis ||
		o.SmallRes.Height == 0 || o.SmallRes.Height > maxSmallAxis {
		return fmt.Errorf("%w: small_res %dx%d", ErrResolutions, o.SmallRes.Width, o.SmallRes.Height)
	}

	return nil
}

// Store is a single open image store file: header, slot table and blob
// region. It is not safe for concurrent use by multiple goroutines; the
// store is owned exclusively by whichever caller holds it, matching the
// single-threaded, cooperative model of the core (see the HTTP server in
// cmd/imgstore-server for how to serialise access across requests).
type Store struct {
	f         *os.File
	header    Header
	slots     []Slot
	codec     imaging.Codec
	blobCache cache.LoadingCache
}

// Create initialises a new store file at path with the given options and
// opens it.
func Create(path string, opts CreateOptions, codec imaging.Codec) (*Store, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: creating store file: %w", ErrIO, err)
	}

	header := Header{
		Name:     catalogName,
		Version:  0,
		NumFiles: 0,
		MaxFiles: opts.MaxFiles,
		ThumbRes: opts.ThumbRes,
		SmallRes: opts.SmallRes,
	}

	if err := writeHeader(f, header); err != nil {
		_ = f.Close()
		return nil, err
	}

	empty := Slot{}
	for i := uint32(0); i < opts.MaxFiles; i++ {
		if err := writeSlot(f, int(i), empty); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing store file: %w", ErrIO, err)
	}

	return Open(path, codec)
}

// Open opens an existing store file, reading its header and full slot
// table into memory.
func Open(path string, codec imaging.Codec) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
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

	s := &Store{
		f:      f,
		header: header,
		slots:  slots,
		codec:  codec,
	}
	s.blobCache = cache.NewLoadingCache(s.loadBlob, cache.WithMaximumSize(maxCachedBlobs))

	return s, nil
}

// Close releases the underlying file handle.
func (s *Store) Close() error {
	return s.f.Close()
}

// Header returns a copy of the current in-memory header.
func (s *Store) Header() Header {
	return s.header
}

// Slots returns a copy of the current in-memory slot table.
func (s *Store) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *Store) loadBlob(k cache.Key) (cache.Value, error) {
	key := k.(blobCacheKey)
	return readBlob(s.f, key.offset, key.size)
}
