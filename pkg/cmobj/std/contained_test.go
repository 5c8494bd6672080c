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

func TestContainedObjectListCapacity(t *testing.T) {
	// Two handles against a capacity-1 ceiling: construction fails,
	// nothing is partially populated.
	list, err := NewContainedObjectList(1,
		ContainedObject{Token: 1, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0009)},
		ContainedObject{Token: 2, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0026)},
	)
	require.Error(t, err)
	var capErr *cmobj.ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, uint(2), capErr.Count)
	assert.Equal(t, uint(1), capErr.Capacity)
	assert.Equal(t, uint(0), list.Len())
}

func TestContainedObjectListWireCountCeiling(t *testing.T) {
	// The wire count is one byte, so 255 handles is the largest list
	// that survives a round trip intact.
	objs := make([]ContainedObject, MaxContainedObjects)
	for i := range objs {
		objs[i] = ContainedObject{
			Token:       cmobj.Token(i + 1),
			GeneratorID: cmobj.NewSmbiosGeneratorID(uint16(i)),
		}
	}
	list, err := NewContainedObjectList(MaxContainedObjects, objs...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, list.encode(&buf))

	var decoded ContainedObjectList
	require.NoError(t, decoded.decode(&buf))
	require.Equal(t, uint(MaxContainedObjects), decoded.Len())
	last, err := decoded.At(MaxContainedObjects - 1)
	require.NoError(t, err)
	assert.Equal(t, cmobj.Token(MaxContainedObjects), last.Token)

	// One past the ceiling is rejected up front, whether as a capacity
	// or as a populated extent, so no list can ever reach the one-byte
	// count with more handles than it can represent.
	var capErr *cmobj.ErrCapacityExceeded
	_, err = NewContainedObjectList(MaxContainedObjects + 1)
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, uint(MaxContainedObjects+1), capErr.Count)
	assert.Equal(t, uint(MaxContainedObjects), capErr.Capacity)

	objs = append(objs, ContainedObject{Token: 256, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0100)})
	_, err = NewContainedObjectList(MaxContainedObjects+1, objs...)
	require.ErrorAs(t, err, &capErr)
}

func TestContainedObjectListNullToken(t *testing.T) {
	_, err := NewContainedObjectList(2,
		ContainedObject{Token: cmobj.NullToken, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0009)},
	)
	var tokErr *cmobj.ErrInvalidToken
	require.ErrorAs(t, err, &tokErr)
}

func TestContainedObjectListAppend(t *testing.T) {
	list, err := NewContainedObjectList(2)
	require.NoError(t, err)

	require.NoError(t, list.Append(ContainedObject{Token: 1, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0009)}))
	require.NoError(t, list.Append(ContainedObject{Token: 2, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0026)}))
	assert.Equal(t, uint(2), list.Len())

	err = list.Append(ContainedObject{Token: 3, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0002)})
	var capErr *cmobj.ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, uint(2), list.Len(), "a failed append must not grow the list")
}

func TestContainedObjectListAt(t *testing.T) {
	list, err := NewContainedObjectList(3,
		ContainedObject{Token: 1, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0009)},
	)
	require.NoError(t, err)

	obj, err := list.At(0)
	require.NoError(t, err)
	assert.Equal(t, cmobj.Token(1), obj.Token)

	// Index 1 is within capacity but beyond the populated extent.
	_, err = list.At(1)
	assert.Error(t, err)
}

func TestContainedObjectIterRestartable(t *testing.T) {
	list, err := NewContainedObjectList(2,
		ContainedObject{Token: 1, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0009)},
		ContainedObject{Token: 2, GeneratorID: cmobj.NewSmbiosGeneratorID(0x0026)},
	)
	require.NoError(t, err)

	it := list.Iter()
	var first []cmobj.Token
	for {
		obj, ok := it.Next()
		if !ok {
			break
		}
		first = append(first, obj.Token)
	}
	assert.Equal(t, []cmobj.Token{1, 2}, first)

	_, ok := it.Next()
	assert.False(t, ok, "an exhausted iterator stays exhausted")

	it.Reset()
	obj, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, cmobj.Token(1), obj.Token)
}
