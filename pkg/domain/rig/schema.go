// 指示: miu200521358
package rig

import (
	"slices"
	"sync"
)

const (
	headIkChainLength = 1
	limbIkChainLength = 2
)

// SchemaNode は役割スキーマ木の1ノードを表す。生成後は変更されない。
type SchemaNode struct {
	role            Role
	expectedName    string
	generatesTarget bool
	ikChainLength   int
	children        []*SchemaNode
}

// Role は役割を返す。
func (n *SchemaNode) Role() Role {
	return n.role
}

// ExpectedName は照合するノード名を返す。
func (n *SchemaNode) ExpectedName() string {
	return n.expectedName
}

// GeneratesTarget はIKターゲットノードを生成するか返す。
func (n *SchemaNode) GeneratesTarget() bool {
	return n.generatesTarget
}

// IkChainLength はIK連鎖長を返す。IK制約を持たない場合は false を返す。
func (n *SchemaNode) IkChainLength() (int, bool) {
	return n.ikChainLength, n.ikChainLength > 0
}

// Children は宣言順の子ノードの複製を返す。
func (n *SchemaNode) Children() []*SchemaNode {
	return slices.Clone(n.children)
}

// Schema は人型トポロジーを表す不変の役割スキーマ木を表す。
type Schema struct {
	profileName  string
	armatureName string
	root         *SchemaNode
	byRole       map[Role]*SchemaNode
}

// schemaLayout は役割スキーマ木の宣言を表す。
type schemaLayout struct {
	role     Role
	target   bool
	chain    int
	children []schemaLayout
}

// humanoidLayout は人型の役割トポロジーを保持する。
var humanoidLayout = schemaLayout{
	role:   Hips,
	target: true,
	children: []schemaLayout{
		limbLayout(ThighL, LegL, FootL),
		limbLayout(ThighR, LegR, FootR),
		{
			role: Spine,
			children: []schemaLayout{{
				role: Chest,
				children: []schemaLayout{
					{role: Neck, children: []schemaLayout{{role: Head, target: true, chain: headIkChainLength}}},
					limbLayout(ArmL, ForearmL, HandL),
					limbLayout(ArmR, ForearmR, HandR),
				},
			}},
		},
	},
}

func limbLayout(upper Role, lower Role, end Role) schemaLayout {
	return schemaLayout{
		role: upper,
		children: []schemaLayout{{
			role:     lower,
			children: []schemaLayout{{role: end, target: true, chain: limbIkChainLength}},
		}},
	}
}

// defaultSchema はプロセス全体で共有する既定スキーマを1度だけ構築する。
var defaultSchema = sync.OnceValue(func() *Schema {
	profile, err := BuiltinProfile(DefaultProfileName)
	if err != nil {
		panic(err)
	}
	schema, err := NewSchema(profile)
	if err != nil {
		panic(err)
	}
	return schema
})

// DefaultSchema は既定命名プロファイルで構築した共有スキーマを返す。
func DefaultSchema() *Schema {
	return defaultSchema()
}

// NewSchema は命名プロファイルから役割スキーマを構築する。
func NewSchema(profile NamingProfile) (*Schema, error) {
	normalized := profile.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}
	schema := &Schema{
		profileName:  normalized.Name,
		armatureName: normalized.Armature,
		byRole:       map[Role]*SchemaNode{},
	}
	schema.root = schema.build(humanoidLayout, normalized.Names)
	return schema, nil
}

func (s *Schema) build(layout schemaLayout, names map[Role]string) *SchemaNode {
	n := &SchemaNode{
		role:            layout.role,
		expectedName:    names[layout.role],
		generatesTarget: layout.target,
		ikChainLength:   layout.chain,
	}
	for _, child := range layout.children {
		n.children = append(n.children, s.build(child, names))
	}
	s.byRole[n.role] = n
	return n
}

// Root はスキーマの起点(Hips)を返す。
func (s *Schema) Root() *SchemaNode {
	return s.root
}

// ProfileName は構築元の命名プロファイル名を返す。
func (s *Schema) ProfileName() string {
	return s.profileName
}

// ArmatureName はアーマチュアノードの期待名を返す。
func (s *Schema) ArmatureName() string {
	return s.armatureName
}

// Lookup は役割のスキーマノードを返す。Root はスキーマ木に含まれない。
func (s *Schema) Lookup(role Role) (*SchemaNode, bool) {
	n, ok := s.byRole[role]
	return n, ok
}

// Walk は宣言順の深さ優先でスキーマノードを訪問する。
func (s *Schema) Walk(fn func(n *SchemaNode, depth int)) {
	var walk func(n *SchemaNode, depth int)
	walk = func(n *SchemaNode, depth int) {
		fn(n, depth)
		for _, child := range n.children {
			walk(child, depth+1)
		}
	}
	walk(s.root, 0)
}

// TargetRoles はIKターゲットを生成する役割を宣言順で返す。
func (s *Schema) TargetRoles() []Role {
	roles := make([]Role, 0)
	s.Walk(func(n *SchemaNode, _ int) {
		if n.generatesTarget {
			roles = append(roles, n.role)
		}
	})
	return roles
}
