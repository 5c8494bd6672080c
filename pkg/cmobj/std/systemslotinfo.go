// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"io"

	"github.com/linuxboot/dyntables/pkg/cmobj"
	"github.com/linuxboot/dyntables/pkg/cmobj/check"
)

// MaxSlotPeerGroups is the platform-wide ceiling on peer groups per
// slot.
const MaxSlotPeerGroups = 5

// SlotPeerGroup is one peer (segment/bus/device/function/width) group
// of a system slot, per SMBIOS Type 9.
type SlotPeerGroup struct {
	SegmentGroupNum uint16
	BusNum          uint8
	DevFuncNum      uint8
	DataBusWidth    uint8
}

// SlotPeerGroups is the bounded peer-group collection of a slot. The
// storage holds MaxSlotPeerGroups entries; the populated extent is
// tracked by a separate count and entries past it must not be
// interpreted.
type SlotPeerGroups struct {
	count  uint8
	groups [MaxSlotPeerGroups]SlotPeerGroup
}

// NewSlotPeerGroups builds the collection all-or-nothing. More than
// MaxSlotPeerGroups entries fail with cmobj.ErrCapacityExceeded.
func NewSlotPeerGroups(groups ...SlotPeerGroup) (SlotPeerGroups, error) {
	if err := check.Capacity(uint(len(groups)), MaxSlotPeerGroups); err != nil {
		return SlotPeerGroups{}, err
	}
	var g SlotPeerGroups
	g.count = uint8(len(groups))
	copy(g.groups[:], groups)
	return g, nil
}

// Len returns the number of populated peer groups.
func (g *SlotPeerGroups) Len() uint {
	return uint(g.count)
}

// At returns the populated peer group at idx.
func (g *SlotPeerGroups) At(idx uint) (SlotPeerGroup, error) {
	if err := check.Index(idx, uint(g.count), MaxSlotPeerGroups); err != nil {
		return SlotPeerGroup{}, err
	}
	return g.groups[idx], nil
}

// All returns a copy of the populated peer groups.
func (g *SlotPeerGroups) All() []SlotPeerGroup {
	out := make([]SlotPeerGroup, g.count)
	copy(out, g.groups[:g.count])
	return out
}

// SystemSlotInfo describes one physical system slot.
//
// SMBIOS Specification v3.5.0 Type 9.
type SystemSlotInfo struct {
	// Token identifying this record for cross-referencing.
	Token cmobj.Token

	SlotDesignation string

	SlotType         uint8
	SlotDataBusWidth uint8
	CurrentUsage     uint8
	SlotLength       uint8
	SlotID           uint16

	SlotCharacteristics1 uint8
	SlotCharacteristics2 uint8

	// SegmentGroupNum, BusNum and DevFuncNum locate the slot's base
	// PCI address.
	SegmentGroupNum uint16
	BusNum          uint8
	DevFuncNum      uint8

	DataBusWidth      uint8
	SlotInformation   uint8
	SlotPhysicalWidth uint8
	SlotPitch         uint16
	SlotHeight        uint8

	PeerGroups SlotPeerGroups
}

// ObjectID implements cmobj.Object.
func (info *SystemSlotInfo) ObjectID() cmobj.ObjectID {
	return cmobj.ObjectIDSystemSlotInfo
}

// SelfToken implements cmobj.SelfIdentified.
func (info *SystemSlotInfo) SelfToken() cmobj.Token {
	return info.Token
}

// SetSelfToken stamps a repository-assigned token into the record.
func (info *SystemSlotInfo) SetSelfToken(token cmobj.Token) {
	info.Token = token
}

// Validate implements cmobj.Object.
func (info *SystemSlotInfo) Validate() error {
	return check.Capacity(uint(info.PeerGroups.count), MaxSlotPeerGroups)
}

// slotFixed is the packed fixed-width tail of the record, in ABI
// order.
type slotFixed struct {
	SlotType             uint8
	SlotDataBusWidth     uint8
	CurrentUsage         uint8
	SlotLength           uint8
	SlotID               uint16
	SlotCharacteristics1 uint8
	SlotCharacteristics2 uint8
	SegmentGroupNum      uint16
	BusNum               uint8
	DevFuncNum           uint8
	DataBusWidth         uint8
	SlotInformation      uint8
	SlotPhysicalWidth    uint8
	SlotPitch            uint16
	SlotHeight           uint8
	PeerGroupingCount    uint8
	PeerGroups           [MaxSlotPeerGroups]SlotPeerGroup
}

// Encode implements cmobj.Object. Unlike the baseboard's trailing
// list, the peer-group storage is a fixed part of the layout: all
// MaxSlotPeerGroups entries are written, populated or not.
func (info *SystemSlotInfo) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(info.Token)); err != nil {
		return err
	}
	if err := writeString(w, info.SlotDesignation); err != nil {
		return err
	}
	fixed := slotFixed{
		SlotType:             info.SlotType,
		SlotDataBusWidth:     info.SlotDataBusWidth,
		CurrentUsage:         info.CurrentUsage,
		SlotLength:           info.SlotLength,
		SlotID:               info.SlotID,
		SlotCharacteristics1: info.SlotCharacteristics1,
		SlotCharacteristics2: info.SlotCharacteristics2,
		SegmentGroupNum:      info.SegmentGroupNum,
		BusNum:               info.BusNum,
		DevFuncNum:           info.DevFuncNum,
		DataBusWidth:         info.DataBusWidth,
		SlotInformation:      info.SlotInformation,
		SlotPhysicalWidth:    info.SlotPhysicalWidth,
		SlotPitch:            info.SlotPitch,
		SlotHeight:           info.SlotHeight,
		PeerGroupingCount:    info.PeerGroups.count,
		PeerGroups:           info.PeerGroups.groups,
	}
	return binary.Write(w, binary.LittleEndian, &fixed)
}

// Decode implements cmobj.Object.
func (info *SystemSlotInfo) Decode(r io.Reader) error {
	var token uint64
	if err := binary.Read(r, binary.LittleEndian, &token); err != nil {
		return err
	}
	info.Token = cmobj.Token(token)
	s, err := readString(r)
	if err != nil {
		return err
	}
	info.SlotDesignation = s
	var fixed slotFixed
	if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
		return err
	}
	if err := check.Capacity(uint(fixed.PeerGroupingCount), MaxSlotPeerGroups); err != nil {
		return err
	}
	info.SlotType = fixed.SlotType
	info.SlotDataBusWidth = fixed.SlotDataBusWidth
	info.CurrentUsage = fixed.CurrentUsage
	info.SlotLength = fixed.SlotLength
	info.SlotID = fixed.SlotID
	info.SlotCharacteristics1 = fixed.SlotCharacteristics1
	info.SlotCharacteristics2 = fixed.SlotCharacteristics2
	info.SegmentGroupNum = fixed.SegmentGroupNum
	info.BusNum = fixed.BusNum
	info.DevFuncNum = fixed.DevFuncNum
	info.DataBusWidth = fixed.DataBusWidth
	info.SlotInformation = fixed.SlotInformation
	info.SlotPhysicalWidth = fixed.SlotPhysicalWidth
	info.SlotPitch = fixed.SlotPitch
	info.SlotHeight = fixed.SlotHeight
	info.PeerGroups = SlotPeerGroups{
		count:  fixed.PeerGroupingCount,
		groups: fixed.PeerGroups,
	}
	return nil
}
