// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
)

// copyHeadTargetRotation は頭ボーンへIKターゲットの回転のみを複写する。位置は変更しない。
func copyHeadTargetRotation(g *scene.Graph) {
	for _, bone := range scene.With[rig.IkConstraintSpec](g) {
		binding, ok := scene.Get[rig.BoneBinding](g, bone)
		if !ok || !binding.Has(rig.Head) {
			continue
		}
		ik, _ := scene.Get[rig.IkConstraintSpec](g, bone)
		target, ok := g.Local(ik.Target)
		if !ok {
			continue
		}
		local, _ := g.Local(bone)
		local.Rotation = target.Rotation
		g.SetLocal(bone, local)
	}
}

// orientHipsToHead は頭ターゲットの鉛直軸周り回転のみを腰ボーンへ適用し、
// 腰の位置を頭ターゲット位置から腰-頭距離だけ下げた位置へ合わせる。
// 登録簿に腰ボーンまたは頭ターゲットが無いアバターは当フレームの更新を行わない。
func orientHipsToHead(g *scene.Graph) {
	for _, root := range scene.With[rig.AvatarInstance](g) {
		avatar, _ := scene.Get[rig.AvatarInstance](g, root)
		registry, ok := scene.Get[rig.RoleRegistry](g, root)
		if !ok {
			continue
		}
		hips, hipsOk := registry.Lookup(rig.Hips, rig.KindBone)
		headTarget, headOk := registry.Lookup(rig.Head, rig.KindTarget)
		if !hipsOk || !headOk {
			continue
		}
		head, ok := g.Local(headTarget)
		if !ok {
			continue
		}
		local, ok := g.Local(hips)
		if !ok {
			continue
		}
		local.Rotation = mmath.YawOnly(head.Rotation)
		local.Translation = head.Translation
		local.Translation.Y -= avatar.HipsToHeadDistance
		g.SetLocal(hips, local)
	}
}
