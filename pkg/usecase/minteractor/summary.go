// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
)

// BuildSummary はアバタールートのリターゲット結果を出力用要約へ変換する。
// 登録簿は複製してから参照する。
func BuildSummary(g *scene.Graph, avatarRoot scene.NodeID, source string) *model.RetargetSummary {
	summary := &model.RetargetSummary{
		Source:  source,
		Avatar:  g.Name(avatarRoot),
		Bones:   []model.BoneSummary{},
		Targets: []model.TargetSummary{},
	}
	if avatar, ok := scene.Get[rig.AvatarInstance](g, avatarRoot); ok {
		summary.HipsToHeadDistance = avatar.HipsToHeadDistance
	}
	if report, ok := scene.Get[rig.RetargetReport](g, avatarRoot); ok {
		summary.Profile = report.Profile
		if report.HasArmature {
			summary.Armature = g.Name(report.Armature)
		}
		for _, warning := range report.Warnings {
			summary.Warnings = append(summary.Warnings, model.WarningSummary{
				ID:   warning.ID,
				Role: warning.Role.String(),
				Name: warning.Name,
			})
			if summary.WarningIDs == nil {
				summary.WarningIDs = map[string]int{}
			}
			summary.WarningIDs[warning.ID]++
		}
	}

	live, ok := scene.Get[rig.RoleRegistry](g, avatarRoot)
	if !ok {
		return summary
	}
	registry, err := live.Clone()
	if err != nil {
		registry = *live
	}
	for _, entry := range registry.Entries() {
		switch entry.Kind {
		case rig.KindBone:
			bone := model.BoneSummary{Role: entry.Role.String(), Node: g.Name(entry.Node)}
			if ik, ok := scene.Get[rig.IkConstraintSpec](g, entry.Node); ok && ik.Enabled {
				bone.ChainLength = ik.ChainLength
			}
			summary.Bones = append(summary.Bones, bone)
		case rig.KindTarget:
			local, _ := g.Local(entry.Node)
			summary.Targets = append(summary.Targets, model.TargetSummary{
				Role:     entry.Role.String(),
				Node:     g.Name(entry.Node),
				Position: [3]float64{local.Translation.X, local.Translation.Y, local.Translation.Z},
			})
		}
	}
	return summary
}
