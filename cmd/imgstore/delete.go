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

	"github.com/gpu-ninja/imgstore"
	"github.com/gpu-ninja/imgstore/imaging"
)

func runDelete(codec imaging.Codec, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: delete <store> <img_id>", imgstore.ErrNotEnoughArguments)
	}

	s, err := imgstore.Open(args[0], codec)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Delete(args[1])
}
