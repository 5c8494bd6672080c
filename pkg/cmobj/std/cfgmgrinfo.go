// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"io"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// ConfigurationManagerInfo describes the Configuration Manager itself.
// Generators use it to stamp output tables whenever a table request
// does not override the OEM fields.
type ConfigurationManagerInfo struct {
	// Revision of the Configuration Manager. Larger numbers are
	// assumed to be newer.
	Revision uint32

	// OemID is copied into the header of every generated table.
	OemID OemID
}

// ObjectID implements cmobj.Object.
func (info *ConfigurationManagerInfo) ObjectID() cmobj.ObjectID {
	return cmobj.ObjectIDCfgMgrInfo
}

// Validate implements cmobj.Object.
func (info *ConfigurationManagerInfo) Validate() error {
	return nil
}

// Encode implements cmobj.Object.
func (info *ConfigurationManagerInfo) Encode(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, info)
}

// Decode implements cmobj.Object.
func (info *ConfigurationManagerInfo) Decode(r io.Reader) error {
	return binary.Read(r, binary.LittleEndian, info)
}
