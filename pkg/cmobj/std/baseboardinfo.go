// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"io"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// BaseboardInfo describes one baseboard of the system.
//
// SMBIOS Specification v3.5.0 Type 2.
type BaseboardInfo struct {
	// Token identifying this record for cross-referencing.
	Token cmobj.Token

	// ChassisToken references the chassis holding this board;
	// NullToken if the board is not mounted in a chassis object.
	ChassisToken cmobj.Token

	Manufacturer string
	ProductName  string
	Version      string
	SerialNumber string
	AssetTag     string

	// FeatureFlags per SMBIOS Type 2 offset 09h.
	FeatureFlags uint8

	LocationInChassis string

	// BoardType per SMBIOS Type 2 offset 0Dh.
	BoardType uint8

	// ContainedObjects references the objects mounted on this board.
	ContainedObjects ContainedObjectList
}

// ObjectID implements cmobj.Object.
func (info *BaseboardInfo) ObjectID() cmobj.ObjectID {
	return cmobj.ObjectIDBaseboardInfo
}

// SelfToken implements cmobj.SelfIdentified.
func (info *BaseboardInfo) SelfToken() cmobj.Token {
	return info.Token
}

// SetSelfToken stamps a repository-assigned token into the record.
func (info *BaseboardInfo) SetSelfToken(token cmobj.Token) {
	info.Token = token
}

// Validate implements cmobj.Object.
func (info *BaseboardInfo) Validate() error {
	for it := info.ContainedObjects.Iter(); ; {
		obj, ok := it.Next()
		if !ok {
			break
		}
		if !obj.Token.Valid() {
			return &cmobj.ErrInvalidToken{}
		}
	}
	return nil
}

// Encode implements cmobj.Object.
func (info *BaseboardInfo) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(info.Token)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(info.ChassisToken)); err != nil {
		return err
	}
	for _, s := range []string{
		info.Manufacturer,
		info.ProductName,
		info.Version,
		info.SerialNumber,
		info.AssetTag,
	} {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, info.FeatureFlags); err != nil {
		return err
	}
	if err := writeString(w, info.LocationInChassis); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, info.BoardType); err != nil {
		return err
	}
	return info.ContainedObjects.encode(w)
}

// Decode implements cmobj.Object.
func (info *BaseboardInfo) Decode(r io.Reader) error {
	var token, chassis uint64
	if err := binary.Read(r, binary.LittleEndian, &token); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &chassis); err != nil {
		return err
	}
	info.Token = cmobj.Token(token)
	info.ChassisToken = cmobj.Token(chassis)
	for _, dst := range []*string{
		&info.Manufacturer,
		&info.ProductName,
		&info.Version,
		&info.SerialNumber,
		&info.AssetTag,
	} {
		s, err := readString(r)
		if err != nil {
			return err
		}
		*dst = s
	}
	if err := binary.Read(r, binary.LittleEndian, &info.FeatureFlags); err != nil {
		return err
	}
	s, err := readString(r)
	if err != nil {
		return err
	}
	info.LocationInChassis = s
	if err := binary.Read(r, binary.LittleEndian, &info.BoardType); err != nil {
		return err
	}
	return info.ContainedObjects.decode(r)
}
