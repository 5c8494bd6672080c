// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxboot/dyntables/cmds/cmtool/commands"
	"github.com/linuxboot/dyntables/pkg/cmobj"
	"github.com/linuxboot/dyntables/pkg/cmobj/std"
)

func TestBuildSample(t *testing.T) {
	snap, err := BuildSample()
	require.NoError(t, err)

	cfgs, err := snap.GetAllObjects(cmobj.NamespaceStd, cmobj.ObjectIDCfgMgrInfo)
	require.NoError(t, err)
	require.Len(t, cfgs, 1)

	// Every contained reference of every baseboard must resolve.
	boards, err := snap.GetAllObjects(cmobj.NamespaceStd, cmobj.ObjectIDBaseboardInfo)
	require.NoError(t, err)
	require.NotEmpty(t, boards)
	for _, obj := range boards {
		board := obj.(*std.BaseboardInfo)
		for it := board.ContainedObjects.Iter(); ; {
			ref, ok := it.Next()
			if !ok {
				break
			}
			require.True(t, ref.Token.Valid())
			var id cmobj.ObjectID
			switch ref.GeneratorID.TableID() {
			case 0x0026:
				id = cmobj.ObjectIDIpmiDeviceInfo
			case 0x0009:
				id = cmobj.ObjectIDSystemSlotInfo
			default:
				t.Fatalf("unexpected generator %s", ref.GeneratorID)
			}
			_, err := snap.GetObject(cmobj.NamespaceStd, id, ref.Token)
			assert.NoError(t, err)
		}
	}
}

func TestExecuteWritesLoadableBlob(t *testing.T) {
	for name, compress := range map[string]bool{
		"raw":        false,
		"compressed": true,
	} {
		compress := compress
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "platform.cmobj")
			cmd := &Command{BlobPath: path, Compress: &compress}
			require.NoError(t, cmd.Execute(nil))

			fi, err := os.Stat(path)
			require.NoError(t, err)
			require.NotZero(t, fi.Size())

			snap, err := commands.LoadSnapshot(path)
			require.NoError(t, err)
			assert.Equal(t, 7, snap.Len())
		})
	}
}
