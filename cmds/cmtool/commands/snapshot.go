// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/linuxboot/dyntables/pkg/blob"
	"github.com/linuxboot/dyntables/pkg/repo"
)

// zstd frame magic, for sniffing compressed blobs.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// LoadSnapshot reads an object-graph blob from a file, transparently
// handling zstd-compressed blobs.
func LoadSnapshot(path string) (*repo.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the object blob '%s': %w", path, err)
	}
	if bytes.HasPrefix(data, zstdMagic) {
		return blob.ReadCompressed(bytes.NewReader(data))
	}
	return blob.Decode(data)
}
