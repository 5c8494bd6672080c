// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OemIDSize is the fixed width of the OEM identifier, as stamped into
// ACPI table headers.
const OemIDSize = 6

// OemID wraps the fixed-width OEM identifier to give us more control
// over how it is serialized.
type OemID struct {
	Value [OemIDSize]uint8
}

// NewOemID builds an OemID from a string of at most 6 bytes; shorter
// strings are zero padded on the right.
func NewOemID(s string) (OemID, error) {
	var id OemID
	if len(s) > OemIDSize {
		return id, fmt.Errorf("OEM ID %q is longer than %d bytes", s, OemIDSize)
	}
	copy(id.Value[:], s)
	return id, nil
}

func (id OemID) String() string {
	return strings.TrimRight(string(id.Value[:]), "\x00")
}

// MarshalJSON implements json.Marshaler.
func (id OemID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *OemID) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := NewOemID(str)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
