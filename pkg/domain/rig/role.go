// 指示: miu200521358
package rig

import "fmt"

// Role は論理スケルトン上の役割を表す。
type Role int

const (
	Root Role = iota
	Hips
	Spine
	Chest
	Neck
	Head
	ArmL
	ArmR
	ForearmL
	ForearmR
	HandL
	HandR
	ThighL
	ThighR
	LegL
	LegR
	FootL
	FootR
)

// roleNames は役割の識別名を保持する。
var roleNames = [...]string{
	Root:     "Root",
	Hips:     "Hips",
	Spine:    "Spine",
	Chest:    "Chest",
	Neck:     "Neck",
	Head:     "Head",
	ArmL:     "ArmL",
	ArmR:     "ArmR",
	ForearmL: "ForearmL",
	ForearmR: "ForearmR",
	HandL:    "HandL",
	HandR:    "HandR",
	ThighL:   "ThighL",
	ThighR:   "ThighR",
	LegL:     "LegL",
	LegR:     "LegR",
	FootL:    "FootL",
	FootR:    "FootR",
}

// AllRoles は全役割を宣言順で返す。
func AllRoles() []Role {
	roles := make([]Role, 0, len(roleNames))
	for i := range roleNames {
		roles = append(roles, Role(i))
	}
	return roles
}

// String は役割の識別名を返す。
func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Valid は定義済みの役割か判定する。
func (r Role) Valid() bool {
	return r >= 0 && int(r) < len(roleNames)
}

// ParseRole は識別名から役割を解決する。
func ParseRole(name string) (Role, error) {
	for i, roleName := range roleNames {
		if roleName == name {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("未定義の役割です: %s", name)
}

// RoleKind は登録簿の参照先種別(ボーン/ターゲット)を表す。
type RoleKind int

const (
	// KindBone は照合されたボーンノードを表す。
	KindBone RoleKind = iota
	// KindTarget は生成されたIKターゲットノードを表す。
	KindTarget
)

// String は種別名を返す。
func (k RoleKind) String() string {
	switch k {
	case KindBone:
		return "Bone"
	case KindTarget:
		return "Target"
	default:
		return fmt.Sprintf("RoleKind(%d)", int(k))
	}
}

// TargetName はIKターゲットノード名を返す。
func TargetName(role Role) string {
	return "Target:" + role.String()
}
