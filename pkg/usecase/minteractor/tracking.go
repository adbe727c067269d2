// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/miu200521358/mu_rigretarget/pkg/usecase/port/moutput"
)

// newDriveTrackedTargets はローカルユーザー印を持つIKターゲットへ入力姿勢を書き込むシステムを返す。
func newDriveTrackedTargets(source moutput.ITrackingSource) scene.System {
	return func(g *scene.Graph) {
		if source == nil {
			return
		}
		for _, id := range scene.With[rig.TargetNode](g) {
			if !scene.Has[rig.LocalUserFlag](g, id) {
				continue
			}
			target, _ := scene.Get[rig.TargetNode](g, id)
			pose, ok := source.TrackedPose(target.Role)
			if !ok {
				continue
			}
			local, _ := g.Local(id)
			local.Translation = pose.Translation
			local.Rotation = pose.Rotation
			g.SetLocal(id, local)
		}
	}
}
