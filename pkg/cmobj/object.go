// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmobj

import (
	"io"
)

// Object is one Configuration Manager object instance. All records are
// authored by the platform Configuration Manager before any generator
// runs and are read-only from the generator's perspective.
//
// Encode writes the packed little-endian layout of the record; field
// order, widths and the absence of padding are part of the public ABI.
// Decode is the exact inverse.
type Object interface {
	ObjectID() ObjectID

	// Validate checks the construction-time invariants of the record.
	// A record that fails validation must not be published.
	Validate() error

	Encode(w io.Writer) error
	Decode(r io.Reader) error
}

// SelfIdentified is implemented by records that carry their own token,
// i.e. records other objects may reference (baseboards, slots, IPMI
// devices).
type SelfIdentified interface {
	Object
	SelfToken() Token
}

// objectTypes maps an object ID to a factory for an empty record of
// that type. It is how a decoder turns a (namespace, ID) pair from a
// serialized object graph back into a concrete record.
var objectTypes = map[ObjectID]func() Object{}

// RegisterObjectType adds a record factory for an object ID.
// Registration must happen during package initialization.
func RegisterObjectType(id ObjectID, factory func() Object) {
	objectTypes[id] = factory
}

// NewObject returns an empty record for the given object ID, or false
// if the ID has no registered record type.
func NewObject(id ObjectID) (Object, bool) {
	factory, ok := objectTypes[id]
	if !ok {
		return nil, false
	}
	return factory(), true
}
