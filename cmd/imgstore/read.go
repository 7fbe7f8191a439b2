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

package main

import (
	"fmt"
	"os"

	"github.com/gpu-ninja/imgstore"
	"github.com/gpu-ninja/imgstore/imaging"
)

func runRead(codec imaging.Codec, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: read <store> <img_id> [thumb|thumbnail|small|orig|original]", imgstore.ErrNotEnoughArguments)
	}

	suffix := "orig"
	if len(args) >= 3 {
		suffix = args[2]
	}

	res, ok := imgstore.ParseResolution(suffix)
	if !ok {
		return fmt.Errorf("%w: resolution %q", imgstore.ErrInvalidArgument, suffix)
	}

	s, err := imgstore.Open(args[0], codec)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.Read(args[1], res)
	if err != nil {
		return err
	}

	outPath := fmt.Sprintf("%s_%s.jpg", args[1], suffix)
	return os.WriteFile(outPath, data, 0o644)
}
