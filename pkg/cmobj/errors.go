// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmobj

import (
	"fmt"
)

// ErrInvalidObjectID means an object ID is outside the [0, Max) range
// of its namespace.
type ErrInvalidObjectID struct {
	Namespace NamespaceID
	ID        ObjectID
}

func (err *ErrInvalidObjectID) Error() string {
	return fmt.Sprintf("invalid object ID %d (%s) in namespace %d",
		uint32(err.ID), err.ID, err.Namespace)
}

// ErrInvalidToken means the reserved null token was passed where a
// reference to an existing object was required.
type ErrInvalidToken struct{}

func (ErrInvalidToken) Error() string {
	return "null token where an object reference was required"
}

// ErrNotFound means a well-formed (namespace, ID, token) triple has no
// matching object instance.
type ErrNotFound struct {
	Namespace NamespaceID
	ID        ObjectID
	Token     Token
}

func (err *ErrNotFound) Error() string {
	return fmt.Sprintf("no %s object with token %s in namespace %d",
		err.ID, err.Token, err.Namespace)
}

// ErrCapacityExceeded means an aggregate was constructed with more
// elements than its storage ceiling allows.
type ErrCapacityExceeded struct {
	Count    uint
	Capacity uint
}

func (err *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("element count %d exceeds capacity %d",
		err.Count, err.Capacity)
}

// ErrNamespaceConflict means a namespace registration would renumber
// or shrink an already published namespace.
type ErrNamespaceConflict struct {
	Old Namespace
	New Namespace
}

func (err *ErrNamespaceConflict) Error() string {
	return fmt.Sprintf("namespace %d (%q, max %d) cannot be replaced by (%q, max %d)",
		err.Old.ID, err.Old.Name, uint32(err.Old.Max), err.New.Name, uint32(err.New.Max))
}
