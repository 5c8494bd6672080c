// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blob

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/linuxboot/dyntables/pkg/repo"
)

// WriteCompressed serializes a snapshot to w as a zstd stream. Large
// object graphs carry raw table payloads which compress well.
func WriteCompressed(w io.Writer, snap *repo.Snapshot) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := Write(zw, snap); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadCompressed parses a snapshot from a zstd stream.
func ReadCompressed(r io.Reader) (*repo.Snapshot, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return Read(zr)
}
