// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmobj

// NamespaceID names a group of object IDs sharing one enumeration and
// range bound.
type NamespaceID uint8

// NamespaceStd is the standard namespace.
const NamespaceStd NamespaceID = 0

// ObjectID names an object type within a namespace. IDs are assigned
// densely starting at zero and never change meaning once published.
type ObjectID uint32

// Object IDs in the standard namespace. This enumeration is
// append-only: new IDs go before ObjectIDMax, existing IDs are never
// renumbered.
const (
	ObjectIDCfgMgrInfo      = ObjectID(0x00) // Configuration Manager Info
	ObjectIDAcpiTableList   = ObjectID(0x01) // ACPI table Info List
	ObjectIDSmbiosTableList = ObjectID(0x02) // SMBIOS table Info List
	ObjectIDIpmiDeviceInfo  = ObjectID(0x03) // IPMI Device Information
	ObjectIDBaseboardInfo   = ObjectID(0x04) // Baseboard Information
	ObjectIDSystemSlotInfo  = ObjectID(0x05) // System Slot Information
	ObjectIDMax             = ObjectID(0x06)
)

func (id ObjectID) String() string {
	switch id {
	case ObjectIDCfgMgrInfo:
		return "cfg_mgr_info"
	case ObjectIDAcpiTableList:
		return "acpi_table_list"
	case ObjectIDSmbiosTableList:
		return "smbios_table_list"
	case ObjectIDIpmiDeviceInfo:
		return "ipmi_device_info"
	case ObjectIDBaseboardInfo:
		return "baseboard_info"
	case ObjectIDSystemSlotInfo:
		return "system_slot_info"
	}
	return "unknown_object"
}

// Namespace describes one object ID namespace.
type Namespace struct {
	ID   NamespaceID
	Name string

	// Max bounds the namespace: every concrete object ID is in
	// [0, Max), and Max itself is never a real ID.
	Max ObjectID
}

// namespaces is the append-only namespace registry. Registration must
// happen during package initialization; lookups afterwards are
// lock-free.
var namespaces = map[NamespaceID]Namespace{
	NamespaceStd: {ID: NamespaceStd, Name: "std", Max: ObjectIDMax},
}

// RegisterNamespace adds a namespace to the registry. Growing the Max
// bound of an existing namespace is allowed (IDs are appended at the
// end); shrinking it or renaming is a breaking change and is rejected.
func RegisterNamespace(ns Namespace) error {
	old, ok := namespaces[ns.ID]
	if ok {
		if ns.Name != old.Name || ns.Max < old.Max {
			return &ErrNamespaceConflict{Old: old, New: ns}
		}
	}
	namespaces[ns.ID] = ns
	return nil
}

// NamespaceByID looks up a registered namespace.
func NamespaceByID(id NamespaceID) (Namespace, bool) {
	ns, ok := namespaces[id]
	return ns, ok
}

// ValidIn reports whether the object ID is within the registered range
// of the given namespace.
func (id ObjectID) ValidIn(nsID NamespaceID) bool {
	ns, ok := namespaces[nsID]
	if !ok {
		return false
	}
	return id < ns.Max
}

// CheckNamespace verifies that every declared object ID of a namespace
// lies in [0, Max) and that Max itself is unused. It is meant for
// schema-definition-time checks and test harnesses, not for the hot
// path.
func CheckNamespace(nsID NamespaceID, declared []ObjectID) error {
	ns, ok := namespaces[nsID]
	if !ok {
		return &ErrInvalidObjectID{Namespace: nsID, ID: 0}
	}
	for _, id := range declared {
		if id >= ns.Max {
			return &ErrInvalidObjectID{Namespace: nsID, ID: id}
		}
	}
	return nil
}
