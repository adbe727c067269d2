// 指示: miu200521358
package rig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tiendc/go-deepcopy"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultArmatureName はアーマチュアノードの既定名を表す。
	DefaultArmatureName = "Armature"
	// DefaultProfileName は既定命名プロファイル名を表す。
	DefaultProfileName = "default"
	// VrmProfileName はVRM humanoid 命名プロファイル名を表す。
	VrmProfileName = "vrm"
)

// NamingProfile は役割ごとの期待ノード名を表す。
type NamingProfile struct {
	Name     string
	Armature string
	Names    map[Role]string
}

// defaultRoleNames はBlender系リグの期待ノード名を保持する。
var defaultRoleNames = map[Role]string{
	Hips:     "Hips",
	Spine:    "Spine",
	Chest:    "Chest",
	Neck:     "Neck",
	Head:     "Head",
	ArmL:     "Arm.L",
	ArmR:     "Arm.R",
	ForearmL: "Forearm.L",
	ForearmR: "Forearm.R",
	HandL:    "Hand.L",
	HandR:    "Hand.R",
	ThighL:   "Thigh.L",
	ThighR:   "Thigh.R",
	LegL:     "Leg.L",
	LegR:     "Leg.R",
	FootL:    "Foot.L",
	FootR:    "Foot.R",
}

// vrmRoleNames はVRM humanoid のボーン名を保持する。
var vrmRoleNames = map[Role]string{
	Hips:     "hips",
	Spine:    "spine",
	Chest:    "chest",
	Neck:     "neck",
	Head:     "head",
	ArmL:     "leftUpperArm",
	ArmR:     "rightUpperArm",
	ForearmL: "leftLowerArm",
	ForearmR: "rightLowerArm",
	HandL:    "leftHand",
	HandR:    "rightHand",
	ThighL:   "leftUpperLeg",
	ThighR:   "rightUpperLeg",
	LegL:     "leftLowerLeg",
	LegR:     "rightLowerLeg",
	FootL:    "leftFoot",
	FootR:    "rightFoot",
}

// builtinProfiles は組み込み命名プロファイルを保持する。
var builtinProfiles = map[string]NamingProfile{
	DefaultProfileName: {Name: DefaultProfileName, Armature: DefaultArmatureName, Names: defaultRoleNames},
	VrmProfileName:     {Name: VrmProfileName, Armature: DefaultArmatureName, Names: vrmRoleNames},
}

// BuiltinProfile は組み込み命名プロファイルの複製を返す。
func BuiltinProfile(name string) (NamingProfile, error) {
	profile, ok := builtinProfiles[name]
	if !ok {
		return NamingProfile{}, fmt.Errorf("未定義の命名プロファイルです: %s (候補: %s)", name, strings.Join(BuiltinProfileNames(), ", "))
	}
	return profile.Clone()
}

// BuiltinProfileNames は組み込み命名プロファイル名を昇順で返す。
func BuiltinProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone は命名プロファイルの深い複製を返す。
func (p NamingProfile) Clone() (NamingProfile, error) {
	var cloned NamingProfile
	if err := deepcopy.Copy(&cloned, p); err != nil {
		return NamingProfile{}, fmt.Errorf("命名プロファイルの複製に失敗しました: %w", err)
	}
	return cloned, nil
}

// WithOverrides は上書き名を適用した新しいプロファイルを返す。元のプロファイルは変更しない。
func (p NamingProfile) WithOverrides(name string, armature string, overrides map[Role]string) (NamingProfile, error) {
	merged, err := p.Clone()
	if err != nil {
		return NamingProfile{}, err
	}
	if merged.Names == nil {
		merged.Names = map[Role]string{}
	}
	if strings.TrimSpace(name) != "" {
		merged.Name = name
	}
	if strings.TrimSpace(armature) != "" {
		merged.Armature = armature
	}
	for role, roleName := range overrides {
		merged.Names[role] = roleName
	}
	return merged.Normalized(), nil
}

// Normalized はノード名をNFC正規化したプロファイルを返す。
func (p NamingProfile) Normalized() NamingProfile {
	names := make(map[Role]string, len(p.Names))
	for role, name := range p.Names {
		names[role] = norm.NFC.String(name)
	}
	return NamingProfile{
		Name:     p.Name,
		Armature: norm.NFC.String(p.Armature),
		Names:    names,
	}
}

// Validate は Root 以外の全役割に重複のない期待名が設定されているか検証する。
func (p NamingProfile) Validate() error {
	if strings.TrimSpace(p.Armature) == "" {
		return fmt.Errorf("アーマチュア名が未設定です: profile=%s", p.Name)
	}
	missing := make([]string, 0)
	for _, role := range AllRoles() {
		if role == Root {
			continue
		}
		if strings.TrimSpace(p.Names[role]) == "" {
			missing = append(missing, role.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("期待ボーン名が未設定です: profile=%s roles=%s", p.Name, strings.Join(missing, ","))
	}
	for role := range p.Names {
		if !role.Valid() {
			return fmt.Errorf("未定義の役割が含まれています: profile=%s role=%d", p.Name, int(role))
		}
	}
	owners := make(map[string]Role, len(p.Names))
	for _, role := range AllRoles() {
		name, ok := p.Names[role]
		if role == Root || !ok {
			continue
		}
		if owner, dup := owners[name]; dup {
			return fmt.Errorf("期待ボーン名が重複しています: profile=%s name=%s roles=%s,%s", p.Name, name, owner, role)
		}
		owners[name] = role
	}
	return nil
}
