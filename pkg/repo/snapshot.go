// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repo

import (
	"sort"
	"sync/atomic"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// Snapshot is an immutable view of the object graph. Any number of
// generators may query it concurrently without locking; nothing in it
// changes after Publish.
type Snapshot struct {
	version uint64
	objects map[objectKey]cmobj.Object
	order   map[listKey][]cmobj.Token
}

// Version returns the repository version this snapshot was published
// as, zero for an unpublished snapshot.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// GetObject resolves one object instance by exact (namespace, ID,
// token) match. Resolving the null token yields ErrNotFound by
// definition: the null token names no object.
func (s *Snapshot) GetObject(namespace cmobj.NamespaceID, id cmobj.ObjectID, token cmobj.Token) (cmobj.Object, error) {
	if !id.ValidIn(namespace) {
		return nil, &cmobj.ErrInvalidObjectID{Namespace: namespace, ID: id}
	}
	obj, ok := s.objects[objectKey{namespace: namespace, id: id, token: token}]
	if !ok || !token.Valid() {
		return nil, &cmobj.ErrNotFound{Namespace: namespace, ID: id, Token: token}
	}
	return obj, nil
}

// GetAllObjects returns every instance of an object type, in the
// order the authority added them.
func (s *Snapshot) GetAllObjects(namespace cmobj.NamespaceID, id cmobj.ObjectID) ([]cmobj.Object, error) {
	if !id.ValidIn(namespace) {
		return nil, &cmobj.ErrInvalidObjectID{Namespace: namespace, ID: id}
	}
	tokens := s.order[listKey{namespace: namespace, id: id}]
	out := make([]cmobj.Object, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, s.objects[objectKey{namespace: namespace, id: id, token: token}])
	}
	return out, nil
}

// Tokens returns the tokens of every instance of an object type, in
// insertion order.
func (s *Snapshot) Tokens(namespace cmobj.NamespaceID, id cmobj.ObjectID) []cmobj.Token {
	return append([]cmobj.Token(nil), s.order[listKey{namespace: namespace, id: id}]...)
}

// Len returns the total number of objects in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.objects)
}

// Walk visits every object, ordered by (namespace, ID) and then by
// insertion order within a type. Walking stops at the first error,
// which is returned.
func (s *Snapshot) Walk(fn func(namespace cmobj.NamespaceID, id cmobj.ObjectID, token cmobj.Token, obj cmobj.Object) error) error {
	lists := make([]listKey, 0, len(s.order))
	for lk := range s.order {
		lists = append(lists, lk)
	}
	sort.Slice(lists, func(i, j int) bool {
		if lists[i].namespace != lists[j].namespace {
			return lists[i].namespace < lists[j].namespace
		}
		return lists[i].id < lists[j].id
	})
	for _, lk := range lists {
		for _, token := range s.order[lk] {
			obj := s.objects[objectKey{namespace: lk.namespace, id: lk.id, token: token}]
			if err := fn(lk.namespace, lk.id, token, obj); err != nil {
				return err
			}
		}
	}
	return nil
}

// Repository publishes snapshots to readers. Updates replace the
// current snapshot wholesale with a version bump; in-flight readers
// keep the snapshot they started with.
type Repository struct {
	version atomic.Uint64
	current atomic.Pointer[Snapshot]
}

// Publish installs a snapshot as the current one and stamps it with
// the next repository version.
func (r *Repository) Publish(snap *Snapshot) uint64 {
	snap.version = r.version.Add(1)
	r.current.Store(snap)
	return snap.version
}

// Current returns the most recently published snapshot, or nil if
// nothing was published yet.
func (r *Repository) Current() *Snapshot {
	return r.current.Load()
}

// GetObject resolves against the current snapshot.
func (r *Repository) GetObject(namespace cmobj.NamespaceID, id cmobj.ObjectID, token cmobj.Token) (cmobj.Object, error) {
	snap := r.Current()
	if snap == nil {
		return nil, &cmobj.ErrNotFound{Namespace: namespace, ID: id, Token: token}
	}
	return snap.GetObject(namespace, id, token)
}
