// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/linuxboot/dyntables/pkg/cmobj"
	"github.com/linuxboot/dyntables/pkg/cmobj/check"
)

// MaxContainedObjects bounds the contained-object handles of one
// record. The wire count is a single byte, so no ceiling above this
// is representable.
const MaxContainedObjects = math.MaxUint8

// ContainedObject is a non-owning edge from an aggregate record to
// another object instance, together with the generator responsible for
// it. Holding the edge does not keep the referent alive; it has to be
// resolved against the repository.
type ContainedObject struct {
	Token       cmobj.Token
	GeneratorID cmobj.GeneratorID
}

// ContainedObjectList is a bounded sequence of contained-object
// references. The capacity is a storage ceiling fixed at construction;
// the logical length is tracked separately and entries past it do not
// exist.
type ContainedObjectList struct {
	capacity uint
	entries  []ContainedObject
}

// NewContainedObjectList builds a list with the given storage ceiling,
// populated all-or-nothing from objs. A ceiling above
// MaxContainedObjects, or more entries than the ceiling allows, fails
// with cmobj.ErrCapacityExceeded; a null token in any entry fails with
// cmobj.ErrInvalidToken. No partially populated list is ever returned.
func NewContainedObjectList(capacity uint, objs ...ContainedObject) (ContainedObjectList, error) {
	if err := check.Capacity(capacity, MaxContainedObjects); err != nil {
		return ContainedObjectList{}, err
	}
	if err := check.Capacity(uint(len(objs)), capacity); err != nil {
		return ContainedObjectList{}, err
	}
	for _, obj := range objs {
		if !obj.Token.Valid() {
			return ContainedObjectList{}, &cmobj.ErrInvalidToken{}
		}
	}
	list := ContainedObjectList{capacity: capacity}
	if len(objs) > 0 {
		list.entries = make([]ContainedObject, len(objs))
		copy(list.entries, objs)
	}
	return list, nil
}

// Append adds one reference, failing with cmobj.ErrCapacityExceeded
// once the ceiling is reached.
func (l *ContainedObjectList) Append(obj ContainedObject) error {
	if err := check.Capacity(uint(len(l.entries))+1, l.capacity); err != nil {
		return err
	}
	if !obj.Token.Valid() {
		return &cmobj.ErrInvalidToken{}
	}
	l.entries = append(l.entries, obj)
	return nil
}

// Len returns the number of populated entries.
func (l *ContainedObjectList) Len() uint {
	return uint(len(l.entries))
}

// Capacity returns the storage ceiling.
func (l *ContainedObjectList) Capacity() uint {
	return l.capacity
}

// At returns the populated entry at idx.
func (l *ContainedObjectList) At(idx uint) (ContainedObject, error) {
	if err := check.Index(idx, l.Len(), l.capacity); err != nil {
		return ContainedObject{}, err
	}
	return l.entries[idx], nil
}

// Iter returns a restartable iterator over the populated entries.
func (l *ContainedObjectList) Iter() *ContainedObjectIter {
	return &ContainedObjectIter{list: l}
}

// ContainedObjectIter walks the populated entries of a list one
// reference at a time. The consumer resolves each (token, generator)
// pair against the repository as it goes.
type ContainedObjectIter struct {
	list *ContainedObjectList
	next uint
}

// Next returns the next reference, or false when the sequence is
// exhausted.
func (it *ContainedObjectIter) Next() (ContainedObject, bool) {
	if it.next >= it.list.Len() {
		return ContainedObject{}, false
	}
	obj := it.list.entries[it.next]
	it.next++
	return obj, true
}

// Reset restarts the sequence from the beginning.
func (it *ContainedObjectIter) Reset() {
	it.next = 0
}

// encode writes the populated extent only: a count byte followed by
// count (token, generator) pairs. The storage ceiling is not part of
// the wire format.
func (l *ContainedObjectList) encode(w io.Writer) error {
	if err := check.Capacity(uint(len(l.entries)), MaxContainedObjects); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(len(l.entries))); err != nil {
		return err
	}
	for _, obj := range l.entries {
		if err := binary.Write(w, binary.LittleEndian, uint64(obj.Token)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(obj.GeneratorID)); err != nil {
			return err
		}
	}
	return nil
}

// decode reads a list back; the decoded ceiling equals the decoded
// count.
func (l *ContainedObjectList) decode(r io.Reader) error {
	var count uint8
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}
	var entries []ContainedObject
	if count > 0 {
		entries = make([]ContainedObject, count)
	}
	for i := range entries {
		var token uint64
		var gen uint32
		if err := binary.Read(r, binary.LittleEndian, &token); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &gen); err != nil {
			return err
		}
		entries[i] = ContainedObject{
			Token:       cmobj.Token(token),
			GeneratorID: cmobj.GeneratorID(gen),
		}
	}
	l.capacity = uint(count)
	l.entries = entries
	return nil
}
