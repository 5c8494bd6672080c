// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package std contains the record types of the standard Configuration
// Manager namespace: the Configuration Manager's own metadata, the
// ACPI and SMBIOS table requests, and the SMBIOS device records.
//
// Every record has a packed little-endian wire layout. Field order and
// widths are part of the public ABI; strings travel length-prefixed
// and optional payloads carry an explicit presence marker.
package std

import (
	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// DeclaredObjectIDs lists every concrete object ID of the standard
// namespace, in ID order.
var DeclaredObjectIDs = []cmobj.ObjectID{
	cmobj.ObjectIDCfgMgrInfo,
	cmobj.ObjectIDAcpiTableList,
	cmobj.ObjectIDSmbiosTableList,
	cmobj.ObjectIDIpmiDeviceInfo,
	cmobj.ObjectIDBaseboardInfo,
	cmobj.ObjectIDSystemSlotInfo,
}

func init() {
	cmobj.RegisterObjectType(cmobj.ObjectIDCfgMgrInfo, func() cmobj.Object { return &ConfigurationManagerInfo{} })
	cmobj.RegisterObjectType(cmobj.ObjectIDAcpiTableList, func() cmobj.Object { return &AcpiTableInfo{} })
	cmobj.RegisterObjectType(cmobj.ObjectIDSmbiosTableList, func() cmobj.Object { return &SmbiosTableInfo{} })
	cmobj.RegisterObjectType(cmobj.ObjectIDIpmiDeviceInfo, func() cmobj.Object { return &IpmiDeviceInfo{} })
	cmobj.RegisterObjectType(cmobj.ObjectIDBaseboardInfo, func() cmobj.Object { return &BaseboardInfo{} })
	cmobj.RegisterObjectType(cmobj.ObjectIDSystemSlotInfo, func() cmobj.Object { return &SystemSlotInfo{} })
}
