// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxboot/dyntables/pkg/cmobj"
	"github.com/linuxboot/dyntables/pkg/cmobj/std"
)

func newIpmi(uid uint32) *std.IpmiDeviceInfo {
	return &std.IpmiDeviceInfo{
		InterfaceType: 0x01,
		SpecRevision:  0x20,
		BaseAddress:   0xCA2,
		Uid:           uid,
	}
}

func TestAddAssignsToken(t *testing.T) {
	b := NewBuilder()

	ipmi := newIpmi(1)
	token, err := b.Add(cmobj.NamespaceStd, ipmi)
	require.NoError(t, err)
	assert.True(t, token.Valid(), "Add must never return the null token")
	assert.Equal(t, token, ipmi.SelfToken(), "Add must stamp the assigned token into the record")

	token2, err := b.Add(cmobj.NamespaceStd, newIpmi(2))
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestAddKeepsExplicitToken(t *testing.T) {
	b := NewBuilder()

	ipmi := newIpmi(1)
	ipmi.Token = cmobj.Token(0x1000)
	token, err := b.Add(cmobj.NamespaceStd, ipmi)
	require.NoError(t, err)
	assert.Equal(t, cmobj.Token(0x1000), token)

	// The same token cannot address two instances of one type.
	dup := newIpmi(2)
	dup.Token = cmobj.Token(0x1000)
	_, err = b.Add(cmobj.NamespaceStd, dup)
	var inUse *ErrTokenInUse
	require.ErrorAs(t, err, &inUse)
}

func TestGetObject(t *testing.T) {
	b := NewBuilder()
	token, err := b.Add(cmobj.NamespaceStd, newIpmi(1))
	require.NoError(t, err)

	snap, err := b.Publish()
	require.NoError(t, err)

	obj, err := snap.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, token)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), obj.(*std.IpmiDeviceInfo).Uid)

	// Exact match only: right token, wrong ID.
	_, err = snap.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDBaseboardInfo, token)
	var notFound *cmobj.ErrNotFound
	require.ErrorAs(t, err, &notFound)

	// Null token resolves to NotFound by definition, not to an error
	// about the token itself.
	_, err = snap.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, cmobj.NullToken)
	require.ErrorAs(t, err, &notFound)

	// IDs outside the namespace range are rejected as such.
	_, err = snap.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDMax, token)
	var badID *cmobj.ErrInvalidObjectID
	require.ErrorAs(t, err, &badID)
}

func TestGetAllObjectsOrder(t *testing.T) {
	b := NewBuilder()
	var tokens []cmobj.Token
	for uid := uint32(1); uid <= 4; uid++ {
		token, err := b.Add(cmobj.NamespaceStd, newIpmi(uid))
		require.NoError(t, err)
		tokens = append(tokens, token)
	}

	snap, err := b.Publish()
	require.NoError(t, err)
	assert.Equal(t, tokens, snap.Tokens(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo))

	objs, err := snap.GetAllObjects(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo)
	require.NoError(t, err)
	require.Len(t, objs, 4)
	for i, obj := range objs {
		assert.Equal(t, uint32(i+1), obj.(*std.IpmiDeviceInfo).Uid)
	}
}

func TestSetObject(t *testing.T) {
	b := NewBuilder()

	err := b.Set(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, cmobj.NullToken, newIpmi(1))
	var badToken *cmobj.ErrInvalidToken
	require.ErrorAs(t, err, &badToken, "Set requires a reference to an existing-or-new object")

	err = b.Set(cmobj.NamespaceStd, cmobj.ObjectIDBaseboardInfo, cmobj.Token(5), newIpmi(1))
	var badID *cmobj.ErrInvalidObjectID
	require.ErrorAs(t, err, &badID, "the addressed ID must agree with the record type")

	require.NoError(t, b.Set(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, cmobj.Token(5), newIpmi(1)))
	// Replacing in place is allowed before publication.
	require.NoError(t, b.Set(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, cmobj.Token(5), newIpmi(9)))

	snap, err := b.Publish()
	require.NoError(t, err)
	obj, err := snap.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, cmobj.Token(5))
	require.NoError(t, err)
	assert.Equal(t, uint32(9), obj.(*std.IpmiDeviceInfo).Uid)
	assert.Equal(t, 1, snap.Len())
}

func TestAddRejectsInvalidRecord(t *testing.T) {
	b := NewBuilder()
	_, err := b.Add(cmobj.NamespaceStd, &std.AcpiTableInfo{
		GeneratorID: cmobj.NewSmbiosGeneratorID(0x0001),
	})
	require.Error(t, err, "construction validation must run on Add")
	assert.Equal(t, 0, len(b.objects), "a rejected record must not be stored")
}

func TestPublishIsolatesSnapshot(t *testing.T) {
	b := NewBuilder()
	ipmi := newIpmi(1)
	token, err := b.Add(cmobj.NamespaceStd, ipmi)
	require.NoError(t, err)

	snap, err := b.Publish()
	require.NoError(t, err)

	// Mutating the builder's record after publication must not be
	// visible through the snapshot.
	ipmi.Uid = 99
	obj, err := snap.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, token)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), obj.(*std.IpmiDeviceInfo).Uid)
}

func TestRepositoryVersioning(t *testing.T) {
	var r Repository
	assert.Nil(t, r.Current())

	_, err := r.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, cmobj.Token(1))
	var notFound *cmobj.ErrNotFound
	require.ErrorAs(t, err, &notFound)

	b := NewBuilder()
	token, err := b.Add(cmobj.NamespaceStd, newIpmi(1))
	require.NoError(t, err)
	snap1, err := b.Publish()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Publish(snap1))

	held := r.Current()
	assert.Equal(t, uint64(1), held.Version())

	b2 := NewBuilder()
	_, err = b2.Add(cmobj.NamespaceStd, newIpmi(2))
	require.NoError(t, err)
	snap2, err := b2.Publish()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), r.Publish(snap2))

	// An in-flight reader keeps the snapshot it started with.
	_, err = held.GetObject(cmobj.NamespaceStd, cmobj.ObjectIDIpmiDeviceInfo, token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), r.Current().Version())
}
