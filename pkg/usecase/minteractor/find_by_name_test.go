// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
)

func TestFindByNameVisitsLastChildSubtreeFirst(t *testing.T) {
	g := scene.NewGraph()
	start := g.Spawn("start")
	a := g.SpawnChild(start, "a", mmath.NewTransform())
	b := g.SpawnChild(start, "b", mmath.NewTransform())
	dupUnderA := g.SpawnChild(a, "dup", mmath.NewTransform())
	dupUnderB := g.SpawnChild(b, "dup", mmath.NewTransform())

	got, ok := FindByName(g, "dup", start)
	if !ok {
		t.Fatalf("dup not found")
	}
	if got != dupUnderB {
		t.Fatalf("traversal order mismatch: got=%v want=%v (a-side=%v)", got, dupUnderB, dupUnderA)
	}
}

func TestFindByNameChecksChildrenBeforeDescending(t *testing.T) {
	g := scene.NewGraph()
	start := g.Spawn("start")
	first := g.SpawnChild(start, "first", mmath.NewTransform())
	g.SpawnChild(first, "target", mmath.NewTransform())
	shallow := g.SpawnChild(start, "target", mmath.NewTransform())

	got, ok := FindByName(g, "target", start)
	if !ok || got != shallow {
		t.Fatalf("shallow match expected: got=%v want=%v", got, shallow)
	}
}

func TestFindByNameStopsAtFirstMatchingSibling(t *testing.T) {
	g := scene.NewGraph()
	start := g.Spawn("start")
	left := g.SpawnChild(start, "same", mmath.NewTransform())
	g.SpawnChild(start, "same", mmath.NewTransform())

	got, ok := FindByName(g, "same", start)
	if !ok || got != left {
		t.Fatalf("first sibling expected: got=%v want=%v", got, left)
	}
}

func TestFindByNameNeverReturnsStart(t *testing.T) {
	g := scene.NewGraph()
	start := g.Spawn("Armature")
	g.SpawnChild(start, "Hips", mmath.NewTransform())

	if got, ok := FindByName(g, "Armature", start); ok {
		t.Fatalf("start should not match: got=%v", got)
	}
}

func TestFindByNameMissing(t *testing.T) {
	g := scene.NewGraph()
	start := g.Spawn("start")
	g.SpawnChild(start, "child", mmath.NewTransform())

	cases := []struct {
		name   string
		target string
		start  scene.NodeID
	}{
		{name: "unknown name", target: "nothing", start: start},
		{name: "empty name", target: "", start: start},
		{name: "missing start", target: "child", start: scene.NodeID(999)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := FindByName(g, tc.target, tc.start); ok || got != scene.InvalidNode {
				t.Fatalf("expected not found: got=%v ok=%v", got, ok)
			}
		})
	}
}
