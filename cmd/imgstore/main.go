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

// Command imgstore is the CLI front-end for an image store: one subcommand
// per invocation, matching the core's single-threaded, cooperative model.
package main

import (
	"fmt"
	"os"

	"github.com/gpu-ninja/imgstore"
	"github.com/gpu-ninja/imgstore/imaging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	codec := imaging.NewJPEGCodec()

	var err error
	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return
	case "list":
		err = runList(codec, os.Args[2:])
	case "create":
		err = runCreate(codec, os.Args[2:])
	case "read":
		err = runRead(codec, os.Args[2:])
	case "insert":
		err = runInsert(codec, os.Args[2:])
	case "delete":
		err = runDelete(codec, os.Args[2:])
	case "gc":
		err = runGC(codec, os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:]) // uses its own fake codec, see bench.go
	default:
		fmt.Fprintf(os.Stderr, "ERROR: %v: %q\n", imgstore.ErrInvalidCommand, os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: imgstore <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  help")
	fmt.Fprintln(w, "  list <store>")
	fmt.Fprintln(w, "  create <store> [-max_files N] [-thumb_res W H] [-small_res W H]")
	fmt.Fprintln(w, "  read <store> <img_id> [thumb|thumbnail|small|orig|original]")
	fmt.Fprintln(w, "  insert <store> <img_id> <file>")
	fmt.Fprintln(w, "  delete <store> <img_id>")
	fmt.Fprintln(w, "  gc <store> <tmp_store>")
	fmt.Fprintln(w, "  bench")
}
