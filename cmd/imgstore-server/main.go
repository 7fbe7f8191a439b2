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

// Command imgstore-server is the HTTP front-end for an image store. It is a
// single-threaded event loop in spirit: every request into the store is
// serialised behind one mutex, so the core itself never needs locks.
package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gpu-ninja/imgstore"
	"github.com/gpu-ninja/imgstore/imaging"
	flag "github.com/spf13/pflag"
)

// maxInsertBody bounds a single insert request body so a misbehaving or
// malicious client cannot grow the store file without limit.
const maxInsertBody = 64 << 20 // 64MiB

func main() {
	addr := flag.String("addr", "localhost:8000", "listen address")
	storePath := flag.String("store", "", "path to the image store file (required)")
	flag.Parse()

	if *storePath == "" {
		log.Fatal("ERROR: -store is required")
	}

	codec := imaging.NewJPEGCodec()

	s, err := imgstore.Open(*storePath, codec)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	defer s.Close()

	srv := &server{store: s}

	mux := http.NewServeMux()
	mux.HandleFunc("/imgStore/list", srv.handleList)
	mux.HandleFunc("/imgStore/read", srv.handleRead)
	mux.HandleFunc("/imgStore/delete", srv.handleDelete)
	mux.HandleFunc("/imgStore/insert", srv.handleInsert)
	mux.Handle("/", http.FileServer(http.Dir(".")))

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

// server owns the single mutex that serialises every access to the
// underlying *imgstore.Store. The core itself has no lock; this is where
// the spec's single-threaded, cooperative model is actually enforced.
type server struct {
	mu    sync.Mutex
	store *imgstore.Store
}

func (srv *server) handleList(w http.ResponseWriter, r *http.Request) {
	srv.mu.Lock()
	body, err := srv.store.ListJSON()
	srv.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (srv *server) handleRead(w http.ResponseWriter, r *http.Request) {
	imgID := r.URL.Query().Get("img_id")
	resName := r.URL.Query().Get("res")

	res, ok := imgstore.ParseResolution(resName)
	if !ok {
		http.Error(w, imgstore.ErrInvalidArgument.Error(), http.StatusInternalServerError)
		return
	}

	srv.mu.Lock()
	data, err := srv.store.Read(imgID, res)
	srv.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	_, _ = w.Write(data)
}

func (srv *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	imgID := r.URL.Query().Get("img_id")

	srv.mu.Lock()
	err := srv.store.Delete(imgID)
	srv.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/index.html", http.StatusFound)
}

func (srv *server) handleInsert(w http.ResponseWriter, r *http.Request) {
	imgID := r.URL.Query().Get("name")

	tmp, err := os.CreateTemp("", "imgstore-insert")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	limited := io.LimitReader(r.Body, maxInsertBody)
	if _, err := io.Copy(tmp, limited); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	srv.mu.Lock()
	err = srv.store.Insert(imgID, data)
	srv.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/index.html", http.StatusFound)
}
