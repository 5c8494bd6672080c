// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check contains sanity checks shared by the record
// constructors.
package check

import (
	"github.com/hashicorp/go-multierror"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// Capacity checks that a declared element count fits the storage
// ceiling of a bounded aggregate:
// * count <= capacity
func Capacity(count, capacity uint) error {
	var result *multierror.Error
	if count > capacity {
		result = multierror.Append(result, &cmobj.ErrCapacityExceeded{
			Count:    count,
			Capacity: capacity,
		})
	}
	return result.ErrorOrNil()
}

// Index checks that an element index addresses a populated slot of a
// bounded aggregate:
// * idx < count
// * count <= capacity
func Index(idx, count, capacity uint) error {
	var result *multierror.Error
	if idx >= count {
		result = multierror.Append(result, &ErrIndexOutOfRange{
			Idx:   idx,
			Count: count,
		})
	}
	if err := Capacity(count, capacity); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
