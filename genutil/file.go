// Copyright 2019 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package genutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// OpenFile creates the file named fn for writing generated output.
func OpenFile(fn string) (*os.File, error) {
	fileOut, err := os.Create(fn)
	if err != nil {
		return nil, fmt.Errorf("could not open output file: %v", err)
	}
	return fileOut, nil
}

// SyncFile synchronises the supplied os.File and closes it.
func SyncFile(fh *os.File) error {
	if err := fh.Sync(); err != nil {
		fh.Close()
		return fmt.Errorf("could not sync file output: %v", err)
	}

	if err := fh.Close(); err != nil {
		return fmt.Errorf("could not close output file: %v", err)
	}
	return nil
}

// WriteLines writes each of lines to w, terminated by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLinesToFile writes lines to the file named fn, replacing any existing
// content.
func WriteLinesToFile(fn string, lines []string) error {
	fh, err := OpenFile(fn)
	if err != nil {
		return err
	}
	if err := WriteLines(fh, lines); err != nil {
		fh.Close()
		return fmt.Errorf("could not write %s: %v", fn, err)
	}
	return SyncFile(fh)
}
