// 指示: miu200521358
package io_rig

import (
	"testing"

	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/stretchr/testify/require"
)

func TestLoadProfileAppliesOverrides(t *testing.T) {
	path := writeRigFile(t, "mixamo.yaml", `base: vrm
armature: Skeleton
names:
  Hips: mixamorig:Hips
  HandL: mixamorig:LeftHand
`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	require.Equal(t, "mixamo", profile.Name)
	require.Equal(t, "Skeleton", profile.Armature)
	require.Equal(t, "mixamorig:Hips", profile.Names[rig.Hips])
	require.Equal(t, "mixamorig:LeftHand", profile.Names[rig.HandL])
	require.Equal(t, "rightHand", profile.Names[rig.HandR])

	builtin, err := rig.BuiltinProfile(rig.VrmProfileName)
	require.NoError(t, err)
	require.Equal(t, "hips", builtin.Names[rig.Hips], "builtin profile should stay untouched")
}

func TestLoadProfileErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unknown base", file: "p.yaml", content: "base: nothing\n"},
		{name: "unknown role", file: "p.yaml", content: "names:\n  Tail: tail\n"},
		{name: "root role", file: "p.yaml", content: "names:\n  Root: Armature\n"},
		{name: "empty name", file: "p.yaml", content: "names:\n  Head: \"\"\n"},
		{name: "duplicate name", file: "p.yaml", content: "names:\n  HandL: Head\n"},
		{name: "json syntax", file: "p.json", content: "{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadProfile(writeRigFile(t, tc.file, tc.content))
			require.Error(t, err)
		})
	}
}

func TestResolveProfile(t *testing.T) {
	profile, err := ResolveProfile("")
	require.NoError(t, err)
	require.Equal(t, rig.DefaultProfileName, profile.Name)

	profile, err = ResolveProfile(rig.VrmProfileName)
	require.NoError(t, err)
	require.Equal(t, "leftHand", profile.Names[rig.HandL])

	_, err = ResolveProfile("unknown")
	require.Error(t, err)

	path := writeRigFile(t, "custom.json", `{"names": {"Head": "Kopf"}}`)
	schema, err := ResolveSchema(path)
	require.NoError(t, err)
	head, ok := schema.Lookup(rig.Head)
	require.True(t, ok)
	require.Equal(t, "Kopf", head.ExpectedName())
	require.Equal(t, "custom", schema.ProfileName())
}
