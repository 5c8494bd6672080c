// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"io"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// IpmiDeviceInfo describes the IPMI device on the system.
//
// SMBIOS Specification v3.5.0 Type 38.
// IPMI Specification v2.0 r1.1 SPMI Description Table.
type IpmiDeviceInfo struct {
	// InterfaceType is the IPMI interface type (KCS, SMIC, BT, SSIF).
	InterfaceType uint8

	// SpecRevision is the IPMI specification revision, BCD encoded.
	SpecRevision uint8

	// I2CSlaveAddress of the BMC.
	I2CSlaveAddress uint8

	// NVStorageDeviceAddress of the bus the NV storage device sits
	// on, 0xFF if there is none.
	NVStorageDeviceAddress uint8

	// BaseAddress of the BMC registers.
	BaseAddress uint64

	// BaseAddressModifier carries the base address modifier and
	// interrupt information.
	BaseAddressModifier uint8

	// InterruptNumber of the BMC, zero if none.
	InterruptNumber uint8

	// Uid is the ACPI _UID of the IPMI device.
	Uid uint32

	// Token identifying this record for cross-referencing.
	Token cmobj.Token
}

// ObjectID implements cmobj.Object.
func (info *IpmiDeviceInfo) ObjectID() cmobj.ObjectID {
	return cmobj.ObjectIDIpmiDeviceInfo
}

// SelfToken implements cmobj.SelfIdentified.
func (info *IpmiDeviceInfo) SelfToken() cmobj.Token {
	return info.Token
}

// SetSelfToken stamps a repository-assigned token into the record.
func (info *IpmiDeviceInfo) SetSelfToken(token cmobj.Token) {
	info.Token = token
}

// Validate implements cmobj.Object.
func (info *IpmiDeviceInfo) Validate() error {
	return nil
}

// Encode implements cmobj.Object.
func (info *IpmiDeviceInfo) Encode(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, info)
}

// Decode implements cmobj.Object.
func (info *IpmiDeviceInfo) Decode(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, info)
}
