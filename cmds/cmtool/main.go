// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cmtool inspects and produces Configuration Manager object-graph
// blobs, the intermediate form that dynamic ACPI/SMBIOS table
// generators consume.
//
// Synopsis:
//     cmtool mock -f BLOB_FILE [--compress]
//     cmtool show -f BLOB_FILE [--describe]
//     cmtool resolve -f BLOB_FILE --id OBJECT_ID -t TOKEN [options]
//
// An example:
//     cmtool mock -f platform.cmobj
//     cmtool show -f platform.cmobj
//     cmtool resolve -f platform.cmobj --id 4 -t 3
//
// Description:
//     mock:    writes a sample platform object graph
//     show:    prints the objects of a blob
//     resolve: resolves one object by (namespace, object ID, token)
package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/dyntables/cmds/cmtool/commands"
	"github.com/linuxboot/dyntables/cmds/cmtool/commands/mock"
	"github.com/linuxboot/dyntables/cmds/cmtool/commands/resolve"
	"github.com/linuxboot/dyntables/cmds/cmtool/commands/show"
	"github.com/linuxboot/dyntables/pkg/log"
)

var (
	knownCommands = map[string]commands.Command{
		"mock":    &mock.Command{},
		"show":    &show.Command{},
		"resolve": &resolve.Command{},
	}
)

func main() {
	flagsParser := flags.NewParser(nil, flags.Default)
	for commandName, command := range knownCommands {
		_, err := flagsParser.AddCommand(commandName, command.ShortDescription(), command.LongDescription(), command)
		if err != nil {
			panic(err)
		}
	}

	// parse arguments and execute the appropriate command
	if _, err := flagsParser.Parse(); err != nil {
		log.Fatalf("%v", err)
	}
}
