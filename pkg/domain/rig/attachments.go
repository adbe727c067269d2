// 指示: miu200521358
package rig

import (
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
)

const (
	// DefaultIkIterations はIK制約の既定反復回数を表す。
	DefaultIkIterations = 20
)

// BoneBinding は照合済みボーンノードが担う役割集合を表す。
// 1ノードは同じ役割を高々1度だけ保持する。
type BoneBinding struct {
	roles uint32
}

// NewBoneBinding は1役割のボーン割当を生成する。
func NewBoneBinding(role Role) BoneBinding {
	var b BoneBinding
	b.Add(role)
	return b
}

// Add は役割を追加する。
func (b *BoneBinding) Add(role Role) {
	b.roles |= 1 << uint(role)
}

// Has は役割を保持しているか判定する。
func (b BoneBinding) Has(role Role) bool {
	return b.roles&(1<<uint(role)) != 0
}

// Roles は保持する役割を宣言順で返す。
func (b BoneBinding) Roles() []Role {
	roles := make([]Role, 0)
	for _, role := range AllRoles() {
		if b.Has(role) {
			roles = append(roles, role)
		}
	}
	return roles
}

// TargetNode は生成されたIKターゲットノードが表す役割を表す。
type TargetNode struct {
	Role Role
}

// IkConstraintSpec は外部IKソルバーへ渡すIK制約を表す。
type IkConstraintSpec struct {
	Target      scene.NodeID
	ChainLength int
	Iterations  int
	PoleTarget  scene.NodeID
	HasPole     bool
	PoleAngle   float64
	Enabled     bool
}

// NewIkConstraintSpec は既定値のIK制約を生成する。
func NewIkConstraintSpec(target scene.NodeID, chainLength int) IkConstraintSpec {
	return IkConstraintSpec{
		Target:      target,
		ChainLength: chainLength,
		Iterations:  DefaultIkIterations,
		Enabled:     true,
	}
}

// AvatarInstance はアバタールートを表し、付与時にリターゲットを1度起動する。
type AvatarInstance struct {
	HipsToHeadDistance float64
}

// LocalUserFlag はアバターがローカルユーザーの操作下にあることを表す。
type LocalUserFlag struct{}

// LocalInput は端末入力によるノード制御者を表す。
type LocalInput struct{}
