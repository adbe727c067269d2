// 指示: miu200521358
package rig

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultSchemaTopologyOrder(t *testing.T) {
	schema := DefaultSchema()

	got := []string{}
	schema.Walk(func(n *SchemaNode, depth int) {
		got = append(got, strings.Repeat(" ", depth)+n.Role().String())
	})
	want := []string{
		"Hips",
		" ThighL",
		"  LegL",
		"   FootL",
		" ThighR",
		"  LegR",
		"   FootR",
		" Spine",
		"  Chest",
		"   Neck",
		"    Head",
		"   ArmL",
		"    ForearmL",
		"     HandL",
		"   ArmR",
		"    ForearmR",
		"     HandR",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("topology mismatch (-want +got):\n%s", diff)
	}
	if schema.Root().Role() != Hips {
		t.Fatalf("expected Hips root: got=%s", schema.Root().Role())
	}
}

func TestDefaultSchemaIsSharedInstance(t *testing.T) {
	if DefaultSchema() != DefaultSchema() {
		t.Fatalf("expected same schema instance")
	}
}

func TestSchemaTargetRolesAndChainLengths(t *testing.T) {
	schema := DefaultSchema()

	wantTargets := []Role{Hips, FootL, FootR, Head, HandL, HandR}
	if diff := cmp.Diff(wantTargets, schema.TargetRoles()); diff != "" {
		t.Fatalf("target roles mismatch (-want +got):\n%s", diff)
	}

	for role, want := range map[Role]int{Head: 1, HandL: 2, HandR: 2, FootL: 2, FootR: 2} {
		n, ok := schema.Lookup(role)
		if !ok {
			t.Fatalf("expected schema node for %s", role)
		}
		got, ok := n.IkChainLength()
		if !ok || got != want {
			t.Fatalf("chain length mismatch for %s: got=%d(%t) want=%d", role, got, ok, want)
		}
	}
	hips, _ := schema.Lookup(Hips)
	if _, ok := hips.IkChainLength(); ok {
		t.Fatalf("expected Hips to have no IK chain")
	}
	if _, ok := schema.Lookup(Root); ok {
		t.Fatalf("expected Root outside of schema tree")
	}
}

func TestSchemaChildrenIsCopy(t *testing.T) {
	schema := DefaultSchema()
	children := schema.Root().Children()
	children[0] = nil

	if schema.Root().Children()[0] == nil {
		t.Fatalf("expected schema children to be immutable")
	}
}

func TestSchemaExpectedNamesFollowProfile(t *testing.T) {
	profile, err := BuiltinProfile(VrmProfileName)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	schema, err := NewSchema(profile)
	if err != nil {
		t.Fatalf("schema failed: %v", err)
	}

	hand, _ := schema.Lookup(HandL)
	if hand.ExpectedName() != "leftHand" {
		t.Fatalf("expected name mismatch: got=%s", hand.ExpectedName())
	}
	if schema.ProfileName() != VrmProfileName || schema.ArmatureName() != DefaultArmatureName {
		t.Fatalf("schema meta mismatch: profile=%s armature=%s", schema.ProfileName(), schema.ArmatureName())
	}
}

func TestNewSchemaRejectsIncompleteProfile(t *testing.T) {
	profile := NamingProfile{Name: "broken", Armature: DefaultArmatureName, Names: map[Role]string{Hips: "Hips"}}

	_, err := NewSchema(profile)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Spine") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewSchemaRejectsDuplicateExpectedNames(t *testing.T) {
	base, err := BuiltinProfile(DefaultProfileName)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	profile, err := base.WithOverrides("dup", "", map[Role]string{HandL: "Head"})
	if err != nil {
		t.Fatalf("override failed: %v", err)
	}

	_, err = NewSchema(profile)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "name=Head roles=Head,HandL") {
		t.Fatalf("unexpected error: %v", err)
	}
}
