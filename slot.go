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

// SlotState is the validity flag of a slot, modelled as a sum type in
// memory and serialised to a 16-bit field on disk.
type SlotState uint16

const (
	SlotEmpty    SlotState = 0
	SlotOccupied SlotState = 1
)

// rawSlot is the bit-exact on-disk metadata record. Field order and widths
// are part of the wire format; do not reorder or resize.
type rawSlot struct {
	ImgID    [maxImgID + 1]byte
	SHA      [32]byte
	ResOrig  [2]uint32 // width, height
	Size     [nbRes]uint32
	Padding0 uint32
	Offset   [nbRes]uint64
	IsValid  uint16
	Unused16 uint16
	Padding1 uint32
}

var slotSize = binary.Size(rawSlot{})

// DerivedState is the (offset, size) pair for one resolution within a slot.
// An Offset of 0 means the resolution has not been materialised yet; this
// is the wire sentinel, but callers should prefer Materialised().
type DerivedState struct {
	Offset uint64
	Size   uint32
}

// Materialised reports whether this resolution has been written to disk.
func (d DerivedState) Materialised() bool {
	return d.Offset != 0
}

// Slot is the in-memory view of one image metadata record.
type Slot struct {
	State   SlotState
	ImgID   string
	SHA     [32]byte
	OrigRes OrigDimensions
	Res     [nbRes]DerivedState
}

// Valid reports whether the slot currently describes a live image.
func (s Slot) Valid() bool {
	return s.State == SlotOccupied
}

func (s Slot) toRaw() rawSlot {
	var raw rawSlot
	copy(raw.ImgID[:], s.ImgID)
	raw.SHA = s.SHA
	raw.ResOrig = [2]uint32{s.OrigRes.Width, s.OrigRes.Height}
	for r := 0; r < nbRes; r++ {
		raw.Size[r] = s.Res[r].Size
		raw.Offset[r] = s.Res[r].Offset
	}
	raw.IsValid = uint16(s.State)
	return raw
}

func fromRawSlot(raw rawSlot) Slot {
	s := Slot{
		State:   SlotState(raw.IsValid),
		ImgID:   cStringToGo(raw.ImgID[:]),
		SHA:     raw.SHA,
		OrigRes: OrigDimensions{Width: raw.ResOrig[0], Height: raw.ResOrig[1]},
	}
	for r := 0; r < nbRes; r++ {
		s.Res[r] = DerivedState{Offset: raw.Offset[r], Size: raw.Size[r]}
	}
	return s
}

func slotOffset(index int) int64 {
	return int64(headerSize) + int64(index)*int64(slotSize)
}

func blobRegionStart(maxFiles uint32) int64 {
	return int64(headerSize) + int64(maxFiles)*int64(slotSize)
}

// readSlotTable reads all maxFiles slot records, in index order.
func readSlotTable(f *os.File, maxFiles uint32) ([]Slot, error) {
	slots := make([]Slot, maxFiles)

	buf := make([]byte, slotSize)
	for i := range slots {
		if _, err := f.ReadAt(buf, slotOffset(i)); err != nil {
			return nil, fmt.Errorf("%w: reading slot %d: %w", ErrIO, i, err)
		}

		var raw rawSlot
		if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("%w: decoding slot %d: %w", ErrIO, i, err)
		}

		slots[i] = fromRawSlot(raw)
	}

	return slots, nil
}

// writeSlot performs a single positioned write of one slot record.
func writeSlot(f *os.File, index int, s Slot) error {
	raw := s.toRaw()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &raw); err != nil {
		return fmt.Errorf("%w: encoding slot %d: %w", ErrIO, index, err)
	}

	if _, err := f.WriteAt(buf.Bytes(), slotOffset(index)); err != nil {
		return fmt.Errorf("%w: writing slot %d: %w", ErrIO, index, err)
	}

	return nil
}
