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

// Package imaging abstracts the JPEG codec behind the four operations the
// core storage engine needs, so the engine can be exercised against a
// deterministic fake in unit tests instead of real pixel data.
package imaging

// Image is an opaque decoded image handle.
type Image interface {
	// Dimensions returns the pixel width and height.
	Dimensions() (width, height int)
}

// Codec decodes, resizes and re-encodes JPEG images. Implementations must
// be safe to use from a single goroutine at a time; the core never calls a
// Codec concurrently with itself.
type Codec interface {
	// Decode parses encoded JPEG bytes into an Image.
	Decode(data []byte) (Image, error)
	// Resize scales img by factor, preserving aspect ratio. A factor of 1.0
	// returns an image of the same size. Callers are expected to have
	// already clamped factor to at most 1.0 if upscaling is undesired.
	Resize(img Image, factor float64) (Image, error)
	// Encode re-encodes img as JPEG bytes.
	Encode(img Image) ([]byte, error)
}
