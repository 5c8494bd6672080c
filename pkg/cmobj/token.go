// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmobj defines the Configuration Manager object model: the
// identity scheme (object IDs and tokens) and the packed record
// contract shared between a platform Configuration Manager and the
// ACPI/SMBIOS table generators that consume it.
package cmobj

import (
	"fmt"
	"sync/atomic"
)

// Token identifies one instance of a Configuration Manager object.
// It is opaque: holding a Token does not keep the referent alive, and
// resolving it requires a lookup against the owning repository.
type Token uint64

// NullToken is reserved and never identifies an object.
const NullToken Token = 0

// Valid reports whether the token may refer to an object.
func (t Token) Valid() bool {
	return t != NullToken
}

func (t Token) String() string {
	if t == NullToken {
		return "null"
	}
	return fmt.Sprintf("0x%x", uint64(t))
}

// TokenAllocator hands out tokens for new object instances. The zero
// value is ready to use. Allocation never returns NullToken and never
// repeats a token.
type TokenAllocator struct {
	last uint64
}

// Next returns a fresh token.
func (a *TokenAllocator) Next() Token {
	return Token(atomic.AddUint64(&a.last, 1))
}
