// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blob serializes a published Configuration Manager snapshot
// into a single packed byte stream and parses it back. The stream is
// how an object graph crosses a process boundary: a header with a
// signature and object count, then one descriptor and payload per
// object.
package blob

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/xaionaro-go/bytesextra"

	"github.com/linuxboot/dyntables/pkg/cmobj"
	"github.com/linuxboot/dyntables/pkg/log"
	"github.com/linuxboot/dyntables/pkg/repo"
)

// Signature of the blob stream.
var Signature = []byte("_CMOBJ__")

// Stream format version.
const (
	VerMajor = uint8(1)
	VerMinor = uint8(0)
)

// Header opens the stream.
type Header struct {
	Signature [8]uint8
	VerMajor  uint8
	VerMinor  uint8
	NObjects  uint32
}

// EntryHeader describes one serialized object: its address in the
// object graph and the byte size of its packed payload.
type EntryHeader struct {
	Namespace uint8
	ID        uint32
	Token     uint64
	Size      uint32
}

var errBadSignature = errors.New("cannot find CMOBJ signature")

func headerValid(h *Header) bool {
	return bytes.Equal(h.Signature[:], Signature) && h.VerMajor == VerMajor
}

// Write serializes a snapshot to w.
func Write(w io.Writer, snap *repo.Snapshot) error {
	hdr := Header{
		VerMajor: VerMajor,
		VerMinor: VerMinor,
		NObjects: uint32(snap.Len()),
	}
	copy(hdr.Signature[:], Signature)
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	return snap.Walk(func(namespace cmobj.NamespaceID, id cmobj.ObjectID, token cmobj.Token, obj cmobj.Object) error {
		var payload bytes.Buffer
		if err := obj.Encode(&payload); err != nil {
			return fmt.Errorf("cannot encode %s object %s: %w", id, token, err)
		}
		entry := EntryHeader{
			Namespace: uint8(namespace),
			ID:        uint32(id),
			Token:     uint64(token),
			Size:      uint32(payload.Len()),
		}
		if err := binary.Write(w, binary.LittleEndian, &entry); err != nil {
			return err
		}
		_, err := w.Write(payload.Bytes())
		return err
	})
}

// Read parses a snapshot from r.
func Read(r io.Reader) (*repo.Snapshot, error) {
	var hdr Header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	if !headerValid(&hdr) {
		return nil, errBadSignature
	}
	if hdr.VerMinor > VerMinor {
		log.Warnf("blob minor version %d is newer than supported %d, unknown trailing fields may be dropped",
			hdr.VerMinor, VerMinor)
	}
	builder := repo.NewBuilder()
	for i := uint32(0); i < hdr.NObjects; i++ {
		var entry EntryHeader
		if err := binary.Read(r, binary.LittleEndian, &entry); err != nil {
			return nil, err
		}
		obj, ok := cmobj.NewObject(cmobj.ObjectID(entry.ID))
		if !ok {
			return nil, &cmobj.ErrInvalidObjectID{
				Namespace: cmobj.NamespaceID(entry.Namespace),
				ID:        cmobj.ObjectID(entry.ID),
			}
		}
		// Size is read off the wire, so copy the payload out
		// incrementally instead of allocating it in one shot.
		var payload bytes.Buffer
		if n, err := io.CopyN(&payload, r, int64(entry.Size)); err != nil {
			return nil, fmt.Errorf("payload of %s object %s truncated after %d of %d bytes: %w",
				cmobj.ObjectID(entry.ID), cmobj.Token(entry.Token), n, entry.Size, err)
		}
		if err := obj.Decode(&payload); err != nil {
			return nil, fmt.Errorf("cannot decode %s object %s: %w",
				cmobj.ObjectID(entry.ID), cmobj.Token(entry.Token), err)
		}
		if payload.Len() != 0 {
			return nil, fmt.Errorf("%s object %s carries %d undecoded trailing bytes",
				cmobj.ObjectID(entry.ID), cmobj.Token(entry.Token), payload.Len())
		}
		err := builder.Set(cmobj.NamespaceID(entry.Namespace),
			cmobj.ObjectID(entry.ID), cmobj.Token(entry.Token), obj)
		if err != nil {
			return nil, err
		}
	}
	return builder.Publish()
}

// Encode serializes a snapshot to a byte slice.
func Encode(snap *repo.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a snapshot out of an in-memory image.
func Decode(b []byte) (*repo.Snapshot, error) {
	return Read(bytesextra.NewReadWriteSeeker(b))
}
