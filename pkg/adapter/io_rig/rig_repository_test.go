// 指示: miu200521358
package io_rig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const sampleRigYAML = `name: Avatar
children:
  - name: Armature
    translation: [0, 0, 1]
    children:
      - name: Hips
        translation: [0, 1, 0]
        rotation: [0, 0, 0, 2]
        children:
          - name: Spine
            translation: [0, 0.1, 0]
            scale: [1, 2, 1]
`

const sampleRigJSON = `{
  "children": [
    {"name": "Armature", "children": [{"name": "Hips", "translation": [0, 1, 0]}]}
  ]
}`

// writeRigFile はテスト用リグ記述を書き出す。
func writeRigFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// childByName は直下の子から名前で検索する。
func childByName(t *testing.T, g *scene.Graph, parent scene.NodeID, name string) scene.NodeID {
	t.Helper()
	for _, child := range g.Children(parent) {
		if g.Name(child) == name {
			return child
		}
	}
	t.Fatalf("child not found: parent=%s name=%s", g.Name(parent), name)
	return scene.InvalidNode
}

func TestRigRepositoryCanLoad(t *testing.T) {
	repository := NewRigRepository()

	require.True(t, repository.CanLoad("avatar.yaml"))
	require.True(t, repository.CanLoad("avatar.YML"))
	require.True(t, repository.CanLoad("avatar.json"))
	require.False(t, repository.CanLoad("avatar.vrm"))
}

func TestRigRepositoryLoadYAML(t *testing.T) {
	repository := NewRigRepository()
	g := scene.NewGraph()

	root, err := repository.Load(writeRigFile(t, "avatar.yaml", sampleRigYAML), g)
	require.NoError(t, err)
	require.Equal(t, "Avatar", g.Name(root))
	require.Equal(t, 4, g.Len())

	armature := childByName(t, g, root, "Armature")
	hips := childByName(t, g, armature, "Hips")
	spine := childByName(t, g, hips, "Spine")

	armatureLocal, _ := g.Local(armature)
	require.Equal(t, r3.Vec{X: 0, Y: 0, Z: 1}, armatureLocal.Translation)
	hipsLocal, _ := g.Local(hips)
	require.True(t, hipsLocal.Rotation.ApproxEqual(mgl64.QuatIdent()), "rotation should be normalized: %v", hipsLocal.Rotation)
	spineLocal, _ := g.Local(spine)
	require.Equal(t, r3.Vec{X: 1, Y: 2, Z: 1}, spineLocal.Scale)

	spineWorld, _ := g.World(spine)
	require.InDelta(t, 1.1, spineWorld.Translation.Y, 1e-9)
	require.InDelta(t, 1.0, spineWorld.Translation.Z, 1e-9)
}

func TestRigRepositoryLoadJSONInfersRootName(t *testing.T) {
	repository := NewRigRepository()
	g := scene.NewGraph()

	root, err := repository.Load(writeRigFile(t, "sample_avatar.json", sampleRigJSON), g)
	require.NoError(t, err)
	require.Equal(t, "sample_avatar", g.Name(root))
	armature := childByName(t, g, root, "Armature")
	childByName(t, g, armature, "Hips")
}

func TestRigRepositoryLoadNormalizesNames(t *testing.T) {
	repository := NewRigRepository()
	g := scene.NewGraph()
	decomposed := "\u30db\u309a\u30fc\u30f3"

	root, err := repository.Load(writeRigFile(t, "avatar.yaml", "name: "+decomposed+"\n"), g)
	require.NoError(t, err)
	require.Equal(t, "ポーン", g.Name(root))
}

func TestRigRepositoryLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{name: "ext", file: "avatar.fbx", content: "name: A", want: ErrExtInvalid},
		{name: "syntax", file: "avatar.json", content: "{", want: ErrParseFailed},
		{name: "translation length", file: "avatar.yaml", content: "name: A\ntranslation: [1, 2]\n", want: ErrParseFailed},
		{name: "rotation length", file: "avatar.yaml", content: "name: A\nrotation: [0, 0, 1]\n", want: ErrParseFailed},
		{name: "zero rotation", file: "avatar.yaml", content: "name: A\nrotation: [0, 0, 0, 0]\n", want: ErrParseFailed},
		{name: "scale length", file: "avatar.yaml", content: "name: A\nscale: [1]\n", want: ErrParseFailed},
		{name: "child name", file: "avatar.yaml", content: "name: A\nchildren:\n  - translation: [0, 1, 0]\n", want: ErrParseFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := scene.NewGraph()
			_, err := NewRigRepository().Load(writeRigFile(t, tc.file, tc.content), g)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, 0, g.Len(), "graph should be untouched on failure")
		})
	}
}

func TestRigRepositoryLoadMissingFile(t *testing.T) {
	_, err := NewRigRepository().Load(filepath.Join(t.TempDir(), "missing.yaml"), scene.NewGraph())
	require.ErrorIs(t, err, ErrFileNotFound)
	require.ErrorIs(t, err, os.ErrNotExist)
}
