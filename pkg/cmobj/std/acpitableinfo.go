// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// TableSignature is a four-character ACPI table signature stored as a
// little-endian 32 bit value, e.g. "FACP" or "SSDT".
type TableSignature uint32

// NewTableSignature builds a signature from its four-character string
// form.
func NewTableSignature(s string) (TableSignature, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("ACPI table signature %q must be exactly 4 characters", s)
	}
	return TableSignature(binary.LittleEndian.Uint32([]byte(s))), nil
}

func (sig TableSignature) String() string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(sig))
	return string(b[:])
}

// AcpiTableInfo requests that an ACPI table generator be invoked.
//
// TableData may carry the raw table bytes directly; the RAW, DSDT and
// SSDT generators require it, most others ignore it. nil means the
// data was not provided; a non-nil empty slice means an explicitly
// empty payload.
type AcpiTableInfo struct {
	// Signature of the ACPI table to be installed.
	Signature TableSignature

	// Revision of the ACPI table.
	Revision uint8

	// GeneratorID of the ACPI table generator to invoke.
	GeneratorID cmobj.GeneratorID

	// TableData optionally carries the raw table bytes.
	TableData []byte

	// OemTableID overrides the OEM table ID stamped into the table
	// header. Zero means derive it from the Configuration Manager
	// info and the table signature.
	OemTableID uint64

	// OemRevision overrides the OEM revision stamped into the table
	// header. Zero means use the Configuration Manager revision.
	OemRevision uint32

	// MinorRevision of the ACPI table, if the table has one. Zero
	// means the generator picks the latest minor revision it
	// supports.
	MinorRevision uint8
}

// ObjectID implements cmobj.Object.
func (info *AcpiTableInfo) ObjectID() cmobj.ObjectID {
	return cmobj.ObjectIDAcpiTableList
}

// Validate implements cmobj.Object.
func (info *AcpiTableInfo) Validate() error {
	if info.GeneratorID.Kind() != cmobj.GeneratorKindAcpi {
		return &ErrWrongGeneratorKind{
			Want: cmobj.GeneratorKindAcpi,
			Got:  info.GeneratorID,
		}
	}
	return nil
}

// ResolveOemDefaults applies the two-level default rule: an OEM field
// left at zero resolves from the Configuration Manager info instead of
// being taken literally. The derived OEM table ID carries the first
// four bytes of the OEM ID in its low half and the table signature in
// its high half.
func (info *AcpiTableInfo) ResolveOemDefaults(cfg *ConfigurationManagerInfo) (oemTableID uint64, oemRevision uint32) {
	oemTableID = info.OemTableID
	if oemTableID == 0 {
		oemTableID = uint64(binary.LittleEndian.Uint32(cfg.OemID.Value[:4])) |
			uint64(info.Signature)<<32
	}
	oemRevision = info.OemRevision
	if oemRevision == 0 {
		oemRevision = cfg.Revision
	}
	return oemTableID, oemRevision
}

// Encode implements cmobj.Object.
func (info *AcpiTableInfo) Encode(w io.Writer) error {
	for _, field := range []interface{}{
		uint32(info.Signature),
		info.Revision,
		uint32(info.GeneratorID),
	} {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return err
		}
	}
	if err := writeOptBytes(w, info.TableData); err != nil {
		return err
	}
	for _, field := range []interface{}{
		info.OemTableID,
		info.OemRevision,
		info.MinorRevision,
	} {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return err
		}
	}
	return nil
}

// Decode implements cmobj.Object.
func (info *AcpiTableInfo) Decode(r io.Reader) error {
	var sig, gen uint32
	if err := binary.Read(r, binary.LittleEndian, &sig); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &info.Revision); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &gen); err != nil {
		return err
	}
	info.Signature = TableSignature(sig)
	info.GeneratorID = cmobj.GeneratorID(gen)
	data, err := readOptBytes(r)
	if err != nil {
		return err
	}
	info.TableData = data
	if err := binary.Read(r, binary.LittleEndian, &info.OemTableID); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &info.OemRevision); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &info.MinorRevision)
}
