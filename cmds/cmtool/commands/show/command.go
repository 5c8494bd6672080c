// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/camelcase"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/linuxboot/dyntables/cmds/cmtool/commands"
	"github.com/linuxboot/dyntables/pkg/cmobj"
	"github.com/linuxboot/dyntables/pkg/cmobj/std"
	"github.com/linuxboot/dyntables/pkg/repo"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	BlobPath string `short:"f" long:"blob" description:"path to the object-graph blob" required:"true"`
	Describe *bool  `long:"describe" description:"print every field of every record"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "prints the objects of a Configuration Manager blob"
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

	if cmd.Describe != nil && *cmd.Describe {
		return describe(snap)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"NS", "Object", "Token", "Size", "Summary"})
	err = snap.Walk(func(namespace cmobj.NamespaceID, id cmobj.ObjectID, token cmobj.Token, obj cmobj.Object) error {
		var payload bytes.Buffer
		if err := obj.Encode(&payload); err != nil {
			return err
		}
		t.AppendRow(table.Row{
			namespace,
			id,
			token,
			humanize.Bytes(uint64(payload.Len())),
			summarize(obj),
		})
		return nil
	})
	if err != nil {
		return err
	}
	t.Render()
	return nil
}

func summarize(obj cmobj.Object) string {
	switch rec := obj.(type) {
	case *std.ConfigurationManagerInfo:
		return fmt.Sprintf("rev %d, OEM %q", rec.Revision, rec.OemID)
	case *std.AcpiTableInfo:
		return fmt.Sprintf("%s rev %d via %s", rec.Signature, rec.Revision, rec.GeneratorID)
	case *std.SmbiosTableInfo:
		return fmt.Sprintf("via %s", rec.GeneratorID)
	case *std.IpmiDeviceInfo:
		return fmt.Sprintf("interface type %d at 0x%x", rec.InterfaceType, rec.BaseAddress)
	case *std.BaseboardInfo:
		return fmt.Sprintf("%s %s, %d contained objects",
			rec.Manufacturer, rec.ProductName, rec.ContainedObjects.Len())
	case *std.SystemSlotInfo:
		return fmt.Sprintf("%s, %d peer groups", rec.SlotDesignation, rec.PeerGroups.Len())
	}
	return fmt.Sprintf("%T", obj)
}

// describe prints each record field by field, with the field names
// split into words.
func describe(snap *repo.Snapshot) error {
	return snap.Walk(func(namespace cmobj.NamespaceID, id cmobj.ObjectID, token cmobj.Token, obj cmobj.Object) error {
		fmt.Printf("%s (namespace %d, token %s):\n", id, namespace, token)
		v := reflect.ValueOf(obj).Elem()
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			name := strings.Join(camelcase.Split(t.Field(i).Name), " ")
			fmt.Printf("    %-30s %v\n", name, v.Field(i).Interface())
		}
		return nil
	})
}
