// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmobj

import (
	"fmt"
)

// GeneratorKind says which family of table generators an ID belongs
// to.
type GeneratorKind uint8

// Generator kinds.
const (
	GeneratorKindAcpi   = GeneratorKind(0x0)
	GeneratorKindSmbios = GeneratorKind(0x1)
)

func (kind GeneratorKind) String() string {
	switch kind {
	case GeneratorKindAcpi:
		return "ACPI"
	case GeneratorKindSmbios:
		return "SMBIOS"
	}
	return "unknown"
}

// GeneratorID identifies one table generator. The kind lives in bits
// 31:28 and the table identifier in bits 15:0; the layout is part of
// the ABI and mirrors how contained-object references name their
// generator on the wire.
type GeneratorID uint32

// NewAcpiGeneratorID builds the ID of an ACPI table generator.
func NewAcpiGeneratorID(tableID uint16) GeneratorID {
	return GeneratorID(uint32(GeneratorKindAcpi)<<28 | uint32(tableID))
}

// NewSmbiosGeneratorID builds the ID of an SMBIOS table generator.
func NewSmbiosGeneratorID(tableID uint16) GeneratorID {
	return GeneratorID(uint32(GeneratorKindSmbios)<<28 | uint32(tableID))
}

// Kind returns the generator family.
func (id GeneratorID) Kind() GeneratorKind {
	return GeneratorKind(id >> 28)
}

// TableID returns the table identifier within the generator family.
func (id GeneratorID) TableID() uint16 {
	return uint16(id)
}

func (id GeneratorID) String() string {
	return fmt.Sprintf("%s/0x%04x", id.Kind(), id.TableID())
}
