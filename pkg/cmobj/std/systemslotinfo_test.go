// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

func TestSlotPeerGroupsAtCeiling(t *testing.T) {
	groups := make([]SlotPeerGroup, MaxSlotPeerGroups)
	for i := range groups {
		groups[i] = SlotPeerGroup{BusNum: uint8(0x40 + i)}
	}
	g, err := NewSlotPeerGroups(groups...)
	require.NoError(t, err, "exactly MaxSlotPeerGroups peer groups must be accepted")
	assert.Equal(t, uint(MaxSlotPeerGroups), g.Len())
}

func TestSlotPeerGroupsOverCeiling(t *testing.T) {
	groups := make([]SlotPeerGroup, MaxSlotPeerGroups+1)
	_, err := NewSlotPeerGroups(groups...)
	var capErr *cmobj.ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, uint(MaxSlotPeerGroups+1), capErr.Count)
	assert.Equal(t, uint(MaxSlotPeerGroups), capErr.Capacity)
}

func TestSlotPeerGroupsAt(t *testing.T) {
	g, err := NewSlotPeerGroups(SlotPeerGroup{BusNum: 0x40})
	require.NoError(t, err)

	group, err := g.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x40), group.BusNum)

	// Storage exists up to the ceiling, but slots beyond the count
	// must not be interpreted.
	_, err = g.At(1)
	assert.Error(t, err)
}

func TestSlotPeerGroupsAll(t *testing.T) {
	g, err := NewSlotPeerGroups(
		SlotPeerGroup{BusNum: 0x40},
		SlotPeerGroup{BusNum: 0x41},
	)
	require.NoError(t, err)
	assert.Equal(t, []SlotPeerGroup{{BusNum: 0x40}, {BusNum: 0x41}}, g.All())
}

func TestSystemSlotDecodeRejectsBadCount(t *testing.T) {
	info := &SystemSlotInfo{SlotDesignation: "PCIe Slot 1"}
	var buf bytes.Buffer
	require.NoError(t, info.Encode(&buf))

	// Corrupt the peer grouping count beyond the ceiling. The count
	// byte sits right before the trailing peer-group storage, which
	// holds MaxSlotPeerGroups entries of 5 bytes each.
	encoded := buf.Bytes()
	countOff := len(encoded) - MaxSlotPeerGroups*5 - 1
	encoded[countOff] = MaxSlotPeerGroups + 1

	var decoded SystemSlotInfo
	err := decoded.Decode(bytes.NewReader(encoded))
	var capErr *cmobj.ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
}
