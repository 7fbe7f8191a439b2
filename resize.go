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

// materialise derives resolution res for slots[index] through the imaging
// codec and appends the result, unless it already exists. A no-op for
// ResOrig, which is always materialised at insert time.
func (s *Store) materialise(index int, res Resolution) error {
	if res == ResOrig {
		return nil
	}

	if s.slots[index].Res[res].Materialised() {
		return nil
	}

	orig := s.slots[index].Res[ResOrig]
	origBytes, err := readBlob(s.f, int64(orig.Offset), orig.Size)
	if err != nil {
		return err
	}

	decoded, err := s.codec.Decode(origBytes)
	if err != nil {
		return fmt.Errorf("%w: decoding original: %w", ErrImgLib, err)
	}

	target := s.targetFor(res)
	srcW, srcH := decoded.Dimensions()

	factor := shrinkFactor(srcW, srcH, int(target.Width), int(target.Height))

	resized, err := s.codec.Resize(decoded, factor)
	if err != nil {
		return fmt.Errorf("%w: resizing: %w", ErrImgLib, err)
	}

	encoded, err := s.codec.Encode(resized)
	if err != nil {
		return fmt.Errorf("%w: encoding resized: %w", ErrImgLib, err)
	}

	offset, err := appendBlob(s.f, encoded)
	if err != nil {
		return err
	}

	s.slots[index].Res[res] = DerivedState{Offset: uint64(offset), Size: uint32(len(encoded))}

	if err := writeSlot(s.f, index, s.slots[index]); err != nil {
		return err
	}

	s.header.Version++
	if err := writeHeader(s.f, s.header); err != nil {
		return err
	}

	return nil
}

func (s *Store) targetFor(res Resolution) Dimensions {
	switch res {
	case ResThumb:
		return s.header.ThumbRes
	case ResSmall:
		return s.header.SmallRes
	default:
		return Dimensions{}
	}
}

// shrinkFactor computes the aspect-ratio-preserving shrink factor, clamped
// to 1.0 so derived resolutions never upscale (Open Question 2, resolved).
func shrinkFactor(srcW, srcH, targetW, targetH int) float64 {
	if srcW <= 0 || srcH <= 0 {
		return 1.0
	}

	fw := float64(targetW) / float64(srcW)
	fh := float64(targetH) / float64(srcH)

	factor := fw
	if fh < fw {
		factor = fh
	}

	if factor > 1.0 {
		factor = 1.0
	}

	return factor
}
