// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"fmt"
	"os"

	"github.com/linuxboot/dyntables/cmds/cmtool/commands"
	"github.com/linuxboot/dyntables/pkg/blob"
	"github.com/linuxboot/dyntables/pkg/cmobj"
	"github.com/linuxboot/dyntables/pkg/cmobj/std"
	"github.com/linuxboot/dyntables/pkg/repo"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	BlobPath string `short:"f" long:"blob" description:"path to write the object-graph blob to" required:"true"`
	Compress *bool  `long:"compress" description:"write a zstd-compressed blob"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "writes a sample platform object graph, for development and tests"
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

	snap, err := BuildSample()
	if err != nil {
		return err
	}

	file, err := os.Create(cmd.BlobPath)
	if err != nil {
		return fmt.Errorf("unable to create the object blob '%s': %w", cmd.BlobPath, err)
	}
	defer file.Close()

	if cmd.Compress != nil && *cmd.Compress {
		return blob.WriteCompressed(file, snap)
	}
	return blob.Write(file, snap)
}

// BuildSample populates a small but representative platform: the
// Configuration Manager info, two ACPI table requests, one SMBIOS
// request, an IPMI device, two slots and a baseboard containing them.
func BuildSample() (*repo.Snapshot, error) {
	builder := repo.NewBuilder()

	oemID, err := std.NewOemID("LNXBT")
	if err != nil {
		return nil, err
	}
	if _, err := builder.Add(cmobj.NamespaceStd, &std.ConfigurationManagerInfo{
		Revision: 0x00010000,
		OemID:    oemID,
	}); err != nil {
		return nil, err
	}

	fadtSig, err := std.NewTableSignature("FACP")
	if err != nil {
		return nil, err
	}
	if _, err := builder.Add(cmobj.NamespaceStd, &std.AcpiTableInfo{
		Signature:     fadtSig,
		Revision:      6,
		MinorRevision: 4,
		GeneratorID:   cmobj.NewAcpiGeneratorID(0x0001),
	}); err != nil {
		return nil, err
	}

	dsdtSig, err := std.NewTableSignature("DSDT")
	if err != nil {
		return nil, err
	}
	if _, err := builder.Add(cmobj.NamespaceStd, &std.AcpiTableInfo{
		Signature:   dsdtSig,
		Revision:    2,
		GeneratorID: cmobj.NewAcpiGeneratorID(0x0002),
		TableData:   []byte{0x10, 0x02, 0x5C, 0x00}, // tiny AML stub
	}); err != nil {
		return nil, err
	}

	if _, err := builder.Add(cmobj.NamespaceStd, &std.SmbiosTableInfo{
		GeneratorID: cmobj.NewSmbiosGeneratorID(0x0026), // Type 38
	}); err != nil {
		return nil, err
	}

	ipmiToken, err := builder.Add(cmobj.NamespaceStd, &std.IpmiDeviceInfo{
		InterfaceType:          0x01, // KCS
		SpecRevision:           0x20,
		I2CSlaveAddress:        0x20,
		NVStorageDeviceAddress: 0xFF,
		BaseAddress:            0xCA2,
		Uid:                    1,
	})
	if err != nil {
		return nil, err
	}

	peerGroups, err := std.NewSlotPeerGroups(std.SlotPeerGroup{
		SegmentGroupNum: 0,
		BusNum:          0x41,
		DevFuncNum:      0x00,
		DataBusWidth:    0x0B, // x8
	})
	if err != nil {
		return nil, err
	}
	slotToken, err := builder.Add(cmobj.NamespaceStd, &std.SystemSlotInfo{
		SlotDesignation:  "PCIe Slot 1",
		SlotType:         0xA5, // PCI Express
		SlotDataBusWidth: 0x0D, // x16
		CurrentUsage:     0x04, // in use
		SlotLength:       0x04, // long
		SlotID:           1,
		SegmentGroupNum:  0,
		BusNum:           0x40,
		PeerGroups:       peerGroups,
	})
	if err != nil {
		return nil, err
	}

	contained, err := std.NewContainedObjectList(2,
		std.ContainedObject{
			Token:       ipmiToken,
			GeneratorID: cmobj.NewSmbiosGeneratorID(0x0026), // Type 38
		},
		std.ContainedObject{
			Token:       slotToken,
			GeneratorID: cmobj.NewSmbiosGeneratorID(0x0009), // Type 9
		},
	)
	if err != nil {
		return nil, err
	}
	if _, err := builder.Add(cmobj.NamespaceStd, &std.BaseboardInfo{
		Manufacturer:     "LinuxBoot",
		ProductName:      "Reference Board",
		Version:          "1.0",
		SerialNumber:     "LB0001",
		AssetTag:         "none",
		FeatureFlags:     0x01, // hosting board
		BoardType:        0x0A, // motherboard
		ContainedObjects: contained,
	}); err != nil {
		return nil, err
	}

	return builder.Publish()
}
