// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package std

import (
	"fmt"

	"github.com/linuxboot/dyntables/pkg/cmobj"
)

// ErrWrongGeneratorKind means a table request names a generator of the
// wrong family (e.g. an SMBIOS generator in an ACPI table request).
type ErrWrongGeneratorKind struct {
	Want cmobj.GeneratorKind
	Got  cmobj.GeneratorID
}

func (err *ErrWrongGeneratorKind) Error() string {
	return fmt.Sprintf("generator %s is not a %s generator", err.Got, err.Want)
}
