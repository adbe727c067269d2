// 指示: miu200521358
package rig

import (
	"fmt"
	"sort"

	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/tiendc/go-deepcopy"
)

// RegistryKey は登録簿のキー(役割と種別)を表す。
type RegistryKey struct {
	Role Role
	Kind RoleKind
}

// RegistryEntry は登録簿の1件を表す。
type RegistryEntry struct {
	Role Role
	Kind RoleKind
	Node scene.NodeID
}

// RoleRegistry はアバターごとの役割からノードへの対応を表す。
// リターゲット処理のみが書き込み、他の処理は参照のみ行う。
type RoleRegistry struct {
	Nodes map[RegistryKey]scene.NodeID
}

// NewRoleRegistry は空の登録簿を生成する。
func NewRoleRegistry() RoleRegistry {
	return RoleRegistry{Nodes: map[RegistryKey]scene.NodeID{}}
}

// Record は役割と種別に対応するノードを記録する。
func (r *RoleRegistry) Record(role Role, kind RoleKind, node scene.NodeID) {
	if r.Nodes == nil {
		r.Nodes = map[RegistryKey]scene.NodeID{}
	}
	r.Nodes[RegistryKey{Role: role, Kind: kind}] = node
}

// Lookup は役割と種別に対応するノードを返す。
func (r RoleRegistry) Lookup(role Role, kind RoleKind) (scene.NodeID, bool) {
	node, ok := r.Nodes[RegistryKey{Role: role, Kind: kind}]
	return node, ok
}

// Len は登録件数を返す。
func (r RoleRegistry) Len() int {
	return len(r.Nodes)
}

// Entries は役割・種別の昇順で登録内容を返す。
func (r RoleRegistry) Entries() []RegistryEntry {
	entries := make([]RegistryEntry, 0, len(r.Nodes))
	for key, node := range r.Nodes {
		entries = append(entries, RegistryEntry{Role: key.Role, Kind: key.Kind, Node: node})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Role != entries[j].Role {
			return entries[i].Role < entries[j].Role
		}
		return entries[i].Kind < entries[j].Kind
	})
	return entries
}

// Clone は登録簿の深い複製を返す。
func (r RoleRegistry) Clone() (RoleRegistry, error) {
	var cloned RoleRegistry
	if err := deepcopy.Copy(&cloned, r); err != nil {
		return RoleRegistry{}, fmt.Errorf("登録簿の複製に失敗しました: %w", err)
	}
	return cloned, nil
}

// RetargetWarning はリターゲット時の警告1件を表す。
type RetargetWarning struct {
	ID   string
	Role Role
	Name string
}

// RetargetReport はアバタールートに付与されるリターゲット結果を表す。
type RetargetReport struct {
	Profile     string
	Armature    scene.NodeID
	HasArmature bool
	BoundRoles  int
	TargetsMade int
	Warnings    []RetargetWarning
}
