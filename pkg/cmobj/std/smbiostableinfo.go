// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"io"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// SmbiosTableInfo requests that an SMBIOS table generator be invoked.
//
// TableData may carry the raw structure bytes directly; the RAW
// generator requires it. nil means the data was not provided; a
// non-nil empty slice means an explicitly empty payload.
type SmbiosTableInfo struct {
	// GeneratorID of the SMBIOS table generator to invoke.
	GeneratorID cmobj.GeneratorID

	// TableData optionally carries the raw structure bytes.
	TableData []byte
}

// ObjectID implements cmobj.Object.
func (info *SmbiosTableInfo) ObjectID() cmobj.ObjectID {
	return cmobj.ObjectIDSmbiosTableList
}

// Validate implements cmobj.Object.
func (info *SmbiosTableInfo) Validate() error {
	if info.GeneratorID.Kind() != cmobj.GeneratorKindSmbios {
		return &ErrWrongGeneratorKind{
			Want: cmobj.GeneratorKindSmbios,
			Got:  info.GeneratorID,
		}
	}
	return nil
}

// Encode implements cmobj.Object.
func (info *SmbiosTableInfo) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(info.GeneratorID)); err != nil {
		return err
	}
	return writeOptBytes(w, info.TableData)
}

// Decode implements cmobj.Object.
func (info *SmbiosTableInfo) Decode(r io.Reader) error {
	var gen uint32
	if err := binary.Read(r, binary.LittleEndian, &gen); err != nil {
		return err
	}
	info.GeneratorID = cmobj.GeneratorID(gen)
	data, err := readOptBytes(r)
	if err != nil {
		return err
	}
	info.TableData = data
	return nil
}
