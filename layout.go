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

// Resolution identifies one of the three resolutions a slot can carry.
type Resolution int

const (
	ResThumb Resolution = iota
	ResSmall
	ResOrig

	nbRes = 3
)

func (r Resolution) String() string {
	switch r {
	case ResThumb:
		return "thumb"
	case ResSmall:
		return "small"
	case ResOrig:
		return "orig"
	default:
		return "invalid"
	}
}

// ParseResolution maps the CLI/HTTP resolution names to a Resolution.
func ParseResolution(s string) (Resolution, bool) {
	switch s {
	case "thumb", "thumbnail":
		return ResThumb, true
	case "small":
		return ResSmall, true
	case "orig", "original":
		return ResOrig, true
	default:
		return 0, false
	}
}

const (
	// maxStoreName is the capacity of the header's name field, excluding the
	// terminator.
	maxStoreName = 31
	// maxImgID is the capacity of a slot's id field, excluding the terminator.
	maxImgID = 127
	// maxMaxFiles is the largest capacity a store may be created with.
	maxMaxFiles = 100000
	// catalogName is written into every freshly created store's name field.
	catalogName = "EPFL ImgStore binary"
)

// Dimensions is a width/height pair for a derived-resolution target, as
// stored in the header. An original's pixel size uses OrigDimensions.
type Dimensions struct {
	Width  uint16
	Height uint16
}

const (
	maxThumbAxis = 128
	maxSmallAxis = 512
)

// OrigDimensions is the actual pixel size of an ingested original image.
// Wire width is 32 bits per axis, unlike the 16-bit derived-resolution
// targets in Dimensions.
type OrigDimensions struct {
	Width  uint32
	Height uint32
}
