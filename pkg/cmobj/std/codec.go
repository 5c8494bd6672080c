// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxStringLen bounds a single encoded string field.
const maxStringLen = 0xFFFF

// Presence markers for optional payloads. A payload is tri-state on
// the wire: not provided, provided but empty, or provided with data.
const (
	payloadAbsent  = uint8(0)
	payloadPresent = uint8(1)
)

func writeString(w io.Writer, s string) error {
	if len(s) > maxStringLen {
		return fmt.Errorf("string field of %d bytes exceeds the %d byte wire limit", len(s), maxStringLen)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// writeOptBytes encodes an optional payload. nil means "not provided";
// a non-nil empty slice means "provided and empty".
func writeOptBytes(w io.Writer, b []byte) error {
	if b == nil {
		return binary.Write(w, binary.LittleEndian, payloadAbsent)
	}
	if err := binary.Write(w, binary.LittleEndian, payloadPresent); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readOptBytes(r io.Reader) ([]byte, error) {
	var marker uint8
	if err := binary.Read(r, binary.LittleEndian, &marker); err != nil {
		return nil, err
	}
	switch marker {
	case payloadAbsent:
		return nil, nil
	case payloadPresent:
	default:
		return nil, fmt.Errorf("invalid payload presence marker 0x%02x", marker)
	}
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
