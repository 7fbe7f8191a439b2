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
	flag "github.com/spf13/pflag"
)

func runCreate(codec imaging.Codec, args []string) error {
	flagSet := flag.NewFlagSet("create", flag.ContinueOnError)

	defaults := imgstore.DefaultCreateOptions()

	maxFiles := flagSet.Uint32("max_files", defaults.MaxFiles, "maximum number of images the store can hold")
	thumbRes := flagSet.UintSlice("thumb_res", []uint{uint(defaults.ThumbRes.Width), uint(defaults.ThumbRes.Height)}, "thumbnail resolution, W H")
	smallRes := flagSet.UintSlice("small_res", []uint{uint(defaults.SmallRes.Width), uint(defaults.SmallRes.Height)}, "small resolution, W H")

	// pflag only understands "--name N" and "--name=W,H"; rewrite the
	// "-name N" and "-name W H" forms shown in the usage text into that shape.
	var flagArgs []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-max_files":
			a = "-" + a
		case (a == "-thumb_res" || a == "-small_res") && i+2 < len(args):
			a = "-" + a + "=" + args[i+1] + "," + args[i+2]
			i += 2
		}
		flagArgs = append(flagArgs, a)
	}

	if err := flagSet.Parse(flagArgs); err != nil {
		return fmt.Errorf("%w: %v", imgstore.ErrInvalidArgument, err)
	}

	if flagSet.NArg() < 1 {
		return fmt.Errorf("%w: create <store> [-max_files N] [-thumb_res W H] [-small_res W H]", imgstore.ErrNotEnoughArguments)
	}

	if len(*thumbRes) != 2 || len(*smallRes) != 2 {
		return fmt.Errorf("%w: -thumb_res and -small_res each take two values", imgstore.ErrInvalidArgument)
	}

	opts := imgstore.CreateOptions{
		MaxFiles: *maxFiles,
		ThumbRes: imgstore.Dimensions{Width: uint16((*thumbRes)[0]), Height: uint16((*thumbRes)[1])},
		SmallRes: imgstore.Dimensions{Width: uint16((*smallRes)[0]), Height: uint16((*smallRes)[1])},
	}

	s, err := imgstore.Create(flagSet.Arg(0), opts, codec)
	if err != nil {
		return err
	}
	return s.Close()
}
