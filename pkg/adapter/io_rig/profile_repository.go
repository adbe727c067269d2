// 指示: miu200521358
package io_rig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
)

// profileDocument は命名プロファイルファイルを表す。
type profileDocument struct {
	Base     string            `json:"base" yaml:"base"`
	Name     string            `json:"name" yaml:"name"`
	Armature string            `json:"armature" yaml:"armature"`
	Names    map[string]string `json:"names" yaml:"names"`
}

// LoadProfile は命名プロファイルファイルを読み込み、基底プロファイルへ上書きを適用する。
func LoadProfile(path string) (rig.NamingProfile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return rig.NamingProfile{}, newIoExtInvalid(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rig.NamingProfile{}, newIoFileNotFound(path, err)
		}
		return rig.NamingProfile{}, newIoParseFailed("命名プロファイルの読み取りに失敗しました", err)
	}
	doc := profileDocument{}
	if err := decodeDocument(path, b, &doc); err != nil {
		return rig.NamingProfile{}, newIoParseFailed("命名プロファイルの解析に失敗しました", err)
	}

	baseName := strings.TrimSpace(doc.Base)
	if baseName == "" {
		baseName = rig.DefaultProfileName
	}
	base, err := rig.BuiltinProfile(baseName)
	if err != nil {
		return rig.NamingProfile{}, newIoParseFailed("基底プロファイルが不正です: %s", err, path)
	}
	overrides := make(map[rig.Role]string, len(doc.Names))
	for roleName, nodeName := range doc.Names {
		role, err := rig.ParseRole(strings.TrimSpace(roleName))
		if err != nil {
			return rig.NamingProfile{}, newIoParseFailed("役割名が不正です: %s", err, path)
		}
		if role == rig.Root {
			return rig.NamingProfile{}, newIoParseFailed("Root はアーマチュア名で指定してください: %s", nil, path)
		}
		overrides[role] = strings.TrimSpace(nodeName)
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	profile, err := base.WithOverrides(name, strings.TrimSpace(doc.Armature), overrides)
	if err != nil {
		return rig.NamingProfile{}, err
	}
	if err := profile.Validate(); err != nil {
		return rig.NamingProfile{}, newIoParseFailed("命名プロファイルが不正です: %s", err, path)
	}
	return profile, nil
}

// ResolveProfile は組み込みプロファイル名またはファイルパスから命名プロファイルを解決する。
// 空文字は既定プロファイルを返す。
func ResolveProfile(nameOrPath string) (rig.NamingProfile, error) {
	value := strings.TrimSpace(nameOrPath)
	if value == "" {
		return rig.BuiltinProfile(rig.DefaultProfileName)
	}
	for _, name := range rig.BuiltinProfileNames() {
		if name == value {
			return rig.BuiltinProfile(name)
		}
	}
	if filepath.Ext(value) == "" {
		return rig.BuiltinProfile(value)
	}
	return LoadProfile(value)
}

// ResolveSchema は命名プロファイルを解決し、役割スキーマを構築する。
func ResolveSchema(nameOrPath string) (*rig.Schema, error) {
	profile, err := ResolveProfile(nameOrPath)
	if err != nil {
		return nil, err
	}
	return rig.NewSchema(profile)
}
