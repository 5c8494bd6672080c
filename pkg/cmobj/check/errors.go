// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"fmt"
)

// ErrIndexOutOfRange means an element index addresses a slot beyond
// the populated extent of a bounded aggregate.
type ErrIndexOutOfRange struct {
	Idx   uint
	Count uint
}

func (err *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range, have %d elements", err.Idx, err.Count)
}
