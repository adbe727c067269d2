// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/control"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"go.uber.org/zap"
)

// localUserTrackedKeys はローカルユーザー印を伝播する登録簿キーを保持する。
var localUserTrackedKeys = []rig.RegistryKey{
	{Role: rig.Root, Kind: rig.KindBone},
	{Role: rig.Head, Kind: rig.KindTarget},
	{Role: rig.HandL, Kind: rig.KindTarget},
	{Role: rig.HandR, Kind: rig.KindTarget},
	{Role: rig.FootL, Kind: rig.KindTarget},
	{Role: rig.FootR, Kind: rig.KindTarget},
}

// newLocalUserEnters はローカルユーザー印が付与されたアバターの追跡ノードへ印を伝播するシステムを返す。
// ターゲットノードには端末入力による姿勢制御宣言も付与する。
func newLocalUserEnters(logger *zap.Logger) scene.System {
	return func(g *scene.Graph) {
		for _, root := range scene.Added[rig.LocalUserFlag](g) {
			if !scene.Has[rig.AvatarInstance](g, root) || !scene.Has[rig.LocalUserFlag](g, root) {
				continue
			}
			registry, ok := scene.Get[rig.RoleRegistry](g, root)
			if !ok {
				continue
			}
			for _, key := range localUserTrackedKeys {
				node, ok := registry.Lookup(key.Role, key.Kind)
				if !ok {
					continue
				}
				scene.Insert(g, node, rig.LocalUserFlag{})
				if key.Kind == rig.KindTarget {
					control.Claim[mmath.Transform, rig.LocalInput](g, node)
				}
			}
			logger.Debug(messages.LogLocalUserEntered, zap.Uint64("avatar", uint64(root)))
		}
	}
}

// newLocalUserExits はローカルユーザー印が外れたアバターの追跡ノードから印と制御宣言を外すシステムを返す。
func newLocalUserExits(logger *zap.Logger) scene.System {
	return func(g *scene.Graph) {
		for _, root := range scene.Removed[rig.LocalUserFlag](g) {
			if !scene.Has[rig.AvatarInstance](g, root) || scene.Has[rig.LocalUserFlag](g, root) {
				continue
			}
			registry, ok := scene.Get[rig.RoleRegistry](g, root)
			if !ok {
				continue
			}
			for _, key := range localUserTrackedKeys {
				node, ok := registry.Lookup(key.Role, key.Kind)
				if !ok {
					continue
				}
				scene.Remove[rig.LocalUserFlag](g, node)
				if key.Kind == rig.KindTarget {
					control.Release[mmath.Transform, rig.LocalInput](g, node)
				}
			}
			logger.Debug(messages.LogLocalUserExited, zap.Uint64("avatar", uint64(root)))
		}
	}
}
