// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"fmt"

	"github.com/linuxboot/dyntables/cmds/cmtool/commands"
	"github.com/linuxboot/dyntables/pkg/cmobj"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	BlobPath  string `short:"f" long:"blob" description:"path to the object-graph blob" required:"true"`
	Namespace uint8  `short:"n" long:"namespace" description:"namespace ID" default:"0"`
	ObjectID  uint32 `long:"id" description:"object ID" required:"true"`
	Token     uint64 `short:"t" long:"token" description:"object token" required:"true"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "resolves one object by (namespace, object ID, token)"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return ""
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	snap, err := commands.LoadSnapshot(cmd.BlobPath)
	if err != nil {
		return err
	}

	obj, err := snap.GetObject(cmobj.NamespaceID(cmd.Namespace),
		cmobj.ObjectID(cmd.ObjectID), cmobj.Token(cmd.Token))
	if err != nil {
		return err
	}
	fmt.Printf("%s %s: %+v\n", obj.ObjectID(), cmobj.Token(cmd.Token), obj)
	return nil
}
