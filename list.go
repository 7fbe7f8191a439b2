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

import (
	"encoding/json"
	"fmt"
	"io"
)

// Listing is the JSON shape served by the HTTP front-end's list route.
type Listing struct {
	Images []string `json:"Images"`
}

// ListIDs returns the ids of every occupied slot, in slot order.
func (s *Store) ListIDs() []string {
	var ids []string
	for _, slot := range s.slots {
		if slot.Valid() {
			ids = append(ids, slot.ImgID)
		}
	}
	return ids
}

// ListJSON renders the listing as the HTTP front-end's JSON body.
func (s *Store) ListJSON() ([]byte, error) {
	ids := s.ListIDs()
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(Listing{Images: ids})
}

// PrintList writes the header followed by every occupied slot's metadata
// to w, in the same textual shape as the original CLI tool.
func (s *Store) PrintList(w io.Writer) {
	printHeader(w, s.header)

	if s.header.NumFiles == 0 {
		fmt.Fprintln(w, "<< empty imgStore >>")
		return
	}

	for _, slot := range s.slots {
		if slot.Valid() {
			printSlot(w, slot)
		}
	}
}

func printHeader(w io.Writer, h Header) {
	fmt.Fprintln(w, "*****************************************")
	fmt.Fprintln(w, "**********IMGSTORE HEADER START**********")
	fmt.Fprintf(w, "TYPE: %31s\n", h.Name)
	fmt.Fprintf(w, "VERSION: %d\n", h.Version)
	fmt.Fprintf(w, "IMAGE COUNT: %d\t\tMAX IMAGES: %d\n", h.NumFiles, h.MaxFiles)
	fmt.Fprintf(w, "THUMBNAIL: %d x %d\tSMALL: %d x %d\n",
		h.ThumbRes.Width, h.ThumbRes.Height, h.SmallRes.Width, h.SmallRes.Height)
	fmt.Fprintln(w, "***********IMGSTORE HEADER END***********")
	fmt.Fprintln(w, "*****************************************")
}

func printSlot(w io.Writer, s Slot) {
	fmt.Fprintf(w, "IMAGE ID: %s\n", s.ImgID)
	fmt.Fprintf(w, "SHA: %x\n", s.SHA)
	fmt.Fprintf(w, "VALID: %d\n", s.State)
	fmt.Fprintf(w, "OFFSET ORIG. : %d\t SIZE ORIG. : %d\n", s.Res[ResOrig].Offset, s.Res[ResOrig].Size)
	fmt.Fprintf(w, "OFFSET THUMB.: %d\t SIZE THUMB.: %d\n", s.Res[ResThumb].Offset, s.Res[ResThumb].Size)
	fmt.Fprintf(w, "OFFSET SMALL : %d\t SIZE SMALL : %d\n", s.Res[ResSmall].Offset, s.Res[ResSmall].Size)
	fmt.Fprintf(w, "ORIGINAL: %d x %d\n", s.OrigRes.Width, s.OrigRes.Height)
	fmt.Fprintln(w, "*****************************************")
}
