// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repo

import (
	"fmt"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// ErrTokenInUse means Add was asked to store an object under a token
// that already addresses another instance of the same type.
type ErrTokenInUse struct {
	Namespace cmobj.NamespaceID
	ID        cmobj.ObjectID
	Token     cmobj.Token
}

func (err *ErrTokenInUse) Error() string {
	return fmt.Sprintf("token %s already addresses a %s object in namespace %d",
		err.Token, err.ID, err.Namespace)
}
