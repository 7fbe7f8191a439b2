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

import "errors"

// Sentinel errors surfaced by the core. Call sites wrap these with
// fmt.Errorf("...: %w", err) so errors.Is still matches across the wrap.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidImgID       = errors.New("invalid image id")
	ErrInvalidCommand     = errors.New("invalid command")
	ErrNotEnoughArguments = errors.New("not enough arguments")
	ErrResolutions        = errors.New("invalid resolution bounds")
	ErrMaxFiles           = errors.New("invalid max files")
	ErrIO                 = errors.New("i/o failure")
	ErrOutOfMemory        = errors.New("out of memory")
	ErrImgLib             = errors.New("imaging library failure")
	ErrFullImgStore       = errors.New("image store is full")
	ErrFileNotFound       = errors.New("image not found")
	ErrDuplicateID        = errors.New("duplicate image id")
	ErrMalformedStore     = errors.New("malformed image store")
)
