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
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gpu-ninja/imgstore"
	"github.com/gpu-ninja/imgstore/imaging"
	"github.com/silverisntgold/randshiro"
	flag "github.com/spf13/pflag"
)

const (
	benchPayloadSize = 4096
	benchImageCount  = 2000
	benchConcurrency = 20
)

// runBench drives synthetic insert/read load against a scratch store using
// the fake codec, so results measure the store's own I/O and bookkeeping
// rather than JPEG codec time. The core has no internal locking, so every
// call into the shared *imgstore.Store is serialised behind mu, the same
// discipline the HTTP front-end uses.
func runBench(args []string) error {
	flagSet := flag.NewFlagSet("bench", flag.ContinueOnError)
	count := flagSet.Int("count", benchImageCount, "number of images to insert and read back")
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", imgstore.ErrInvalidArgument, err)
	}

	tempDir, err := os.MkdirTemp("", "imgstore-bench")
	if err != nil {
		return fmt.Errorf("%w: %v", imgstore.ErrIO, err)
	}
	defer os.RemoveAll(tempDir)

	codec := imaging.FakeCodec{}
	opts := imgstore.CreateOptions{
		MaxFiles: uint32(*count),
		ThumbRes: imgstore.Dimensions{Width: 64, Height: 64},
		SmallRes: imgstore.Dimensions{Width: 256, Height: 256},
	}

	s, err := imgstore.Create(filepath.Join(tempDir, "bench.imgstore"), opts, codec)
	if err != nil {
		return err
	}
	defer s.Close()

	rng := randshiro.New128pp()
	randReader := &randshiroReader{rng: rng}

	ids := make([]string, *count)
	payloads := make([][]byte, *count)
	for i := range payloads {
		payload := make([]byte, benchPayloadSize)
		if _, err := randReader.Read(payload); err != nil {
			return err
		}
		ids[i] = fmt.Sprintf("bench-%06d", i)
		payloads[i] = imaging.NewFakeImageBytes(800, 600, payload)
	}

	var mu sync.Mutex

	insertElapsed := timeConcurrent(benchConcurrency, *count, func(i int) error {
		mu.Lock()
		defer mu.Unlock()
		return s.Insert(ids[i], payloads[i])
	})

	readElapsed := timeConcurrent(benchConcurrency, *count, func(i int) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := s.Read(ids[i], imgstore.ResSmall)
		return err
	})

	reportIOPS("insert", *count, insertElapsed)
	reportIOPS("read (small, cold)", *count, readElapsed)

	return nil
}

func timeConcurrent(workers, n int, op func(i int) error) time.Duration {
	jobCh := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobCh {
				if err := op(i); err != nil {
					log.Fatal(err)
				}
			}
		}()
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		jobCh <- i
	}
	close(jobCh)
	wg.Wait()

	return time.Since(start)
}

func reportIOPS(label string, n int, elapsed time.Duration) {
	iops := float64(n) / elapsed.Seconds()
	throughput := iops * benchPayloadSize / (1024 * 1024)
	log.Printf("%s: IOPS: %.2f, Throughput: %.2f MB/s\n", label, iops, throughput)
}

type randshiroReader struct {
	rng *randshiro.Gen
}

func (r *randshiroReader) Read(p []byte) (int, error) {
	n := 0
	for len(p[n:]) >= 8 {
		binary.LittleEndian.PutUint64(p[n:], r.rng.Uint64())
		n += 8
	}
	if n < len(p) {
		remainingBytes := r.rng.Uint64()
		for i := n; i < len(p); i++ {
			p[i] = byte(remainingBytes)
			remainingBytes >>= 8
		}
		n = len(p)
	}
	return n, nil
}
