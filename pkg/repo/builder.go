// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repo implements the Configuration Manager object
// repository: a mutable builder the platform authority populates, and
// immutable published snapshots the table generators query through
// the GetObject/SetObject contract.
package repo

import (
	"bytes"
	"fmt"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

type objectKey struct {
	namespace cmobj.NamespaceID
	id        cmobj.ObjectID
	token     cmobj.Token
}

type listKey struct {
	namespace cmobj.NamespaceID
	id        cmobj.ObjectID
}

// tokenSetter is implemented by self-identified records whose token
// the builder may assign on Add.
type tokenSetter interface {
	SetSelfToken(cmobj.Token)
}

// Builder accumulates Configuration Manager objects before they are
// published. It is not safe for concurrent use; the concurrency story
// lives entirely in published snapshots.
type Builder struct {
	alloc   cmobj.TokenAllocator
	objects map[objectKey]cmobj.Object
	order   map[listKey][]cmobj.Token
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		objects: map[objectKey]cmobj.Object{},
		order:   map[listKey][]cmobj.Token{},
	}
}

// Add validates obj and stores it under a fresh token, or under the
// record's own token if it already carries a valid one. The returned
// token is never NullToken.
func (b *Builder) Add(namespace cmobj.NamespaceID, obj cmobj.Object) (cmobj.Token, error) {
	id := obj.ObjectID()
	if !id.ValidIn(namespace) {
		return cmobj.NullToken, &cmobj.ErrInvalidObjectID{Namespace: namespace, ID: id}
	}
	if err := obj.Validate(); err != nil {
		return cmobj.NullToken, err
	}

	token := cmobj.NullToken
	if self, ok := obj.(cmobj.SelfIdentified); ok {
		token = self.SelfToken()
	}
	if !token.Valid() {
		token = b.alloc.Next()
		if setter, ok := obj.(tokenSetter); ok {
			setter.SetSelfToken(token)
		}
	}

	key := objectKey{namespace: namespace, id: id, token: token}
	if _, exists := b.objects[key]; exists {
		return cmobj.NullToken, &ErrTokenInUse{Namespace: namespace, ID: id, Token: token}
	}
	b.objects[key] = obj
	lk := listKey{namespace: namespace, id: id}
	b.order[lk] = append(b.order[lk], token)
	return token, nil
}

// Set stores obj under an explicit token, replacing any previous
// object with the same (namespace, ID, token) address. The null token
// is rejected, as is an ID outside the namespace range or disagreeing
// with the record's own object ID.
func (b *Builder) Set(namespace cmobj.NamespaceID, id cmobj.ObjectID, token cmobj.Token, obj cmobj.Object) error {
	if !token.Valid() {
		return &cmobj.ErrInvalidToken{}
	}
	if !id.ValidIn(namespace) || id != obj.ObjectID() {
		return &cmobj.ErrInvalidObjectID{Namespace: namespace, ID: id}
	}
	if err := obj.Validate(); err != nil {
		return err
	}
	key := objectKey{namespace: namespace, id: id, token: token}
	if _, exists := b.objects[key]; !exists {
		lk := listKey{namespace: namespace, id: id}
		b.order[lk] = append(b.order[lk], token)
	}
	b.objects[key] = obj
	return nil
}

// Publish deep-copies the builder's contents into an immutable
// snapshot. The copy goes through each record's packed codec, so a
// published snapshot shares no mutable state with the builder and
// later builder mutations cannot leak into in-flight readers.
func (b *Builder) Publish() (*Snapshot, error) {
	snap := &Snapshot{
		objects: make(map[objectKey]cmobj.Object, len(b.objects)),
		order:   make(map[listKey][]cmobj.Token, len(b.order)),
	}
	for key, obj := range b.objects {
		copied, err := copyObject(obj)
		if err != nil {
			return nil, fmt.Errorf("cannot publish %s object %s: %w", key.id, key.token, err)
		}
		snap.objects[key] = copied
	}
	for lk, tokens := range b.order {
		snap.order[lk] = append([]cmobj.Token(nil), tokens...)
	}
	return snap, nil
}

func copyObject(obj cmobj.Object) (cmobj.Object, error) {
	fresh, ok := cmobj.NewObject(obj.ObjectID())
	if !ok {
		return nil, fmt.Errorf("no registered record type for object ID %s", obj.ObjectID())
	}
	var buf bytes.Buffer
	if err := obj.Encode(&buf); err != nil {
		return nil, err
	}
	if err := fresh.Decode(&buf); err != nil {
		return nil, err
	}
	return fresh, nil
}
