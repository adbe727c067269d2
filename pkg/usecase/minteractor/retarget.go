// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mlogging"
	"go.uber.org/zap"
)

// retargetPass は1アバター分のリターゲット処理状態を表す。
type retargetPass struct {
	graph    *scene.Graph
	armature scene.NodeID
	registry *rig.RoleRegistry
	report   *rig.RetargetReport
	logger   *zap.Logger
}

// Retarget は avatarRoot 配下のアーマチュアに役割スキーマを適用し、
// ボーン割当・IKターゲット生成・役割登録簿の構築を行う。
// 構造上のノード欠落は警告として記録し、処理は継続する。
// 同一アバターへの再実行は想定しない。
func Retarget(g *scene.Graph, avatarRoot scene.NodeID, schema *rig.Schema, logger *zap.Logger) rig.RetargetReport {
	if schema == nil {
		schema = rig.DefaultSchema()
	}
	if logger == nil {
		logger = mlogging.DefaultLogger()
	}

	scene.Insert(g, avatarRoot, rig.NewRoleRegistry())
	registry, _ := scene.Get[rig.RoleRegistry](g, avatarRoot)
	report := rig.RetargetReport{Profile: schema.ProfileName()}

	armature, found := FindByName(g, schema.ArmatureName(), avatarRoot)
	if !found {
		logger.Warn(messages.LogArmatureMissing,
			zap.Uint64("avatar", uint64(avatarRoot)),
			zap.String("name", schema.ArmatureName()))
		report.Warnings = append(report.Warnings, rig.RetargetWarning{
			ID:   model.RigWarningArmatureMissing,
			Role: rig.Root,
			Name: schema.ArmatureName(),
		})
		scene.Insert(g, avatarRoot, report)
		return report
	}

	pass := &retargetPass{
		graph:    g,
		armature: armature,
		registry: registry,
		report:   &report,
		logger:   logger,
	}
	report.Armature = armature
	report.HasArmature = true
	pass.bind(armature, rig.Root)
	pass.apply(schema.Root(), armature)

	logger.Debug(messages.LogRetargetCompleted,
		zap.Uint64("avatar", uint64(avatarRoot)),
		zap.Int("bones", report.BoundRoles),
		zap.Int("targets", report.TargetsMade),
		zap.Int("warnings", len(report.Warnings)))
	scene.Insert(g, avatarRoot, report)
	return report
}

// apply はスキーマノード n を parent の子孫へ照合し、一致した場合のみ子スキーマへ再帰する。
func (p *retargetPass) apply(n *rig.SchemaNode, parent scene.NodeID) {
	found, ok := FindByName(p.graph, n.ExpectedName(), parent)
	if !ok {
		p.logger.Warn(messages.LogBoneMissing,
			zap.String("role", n.Role().String()),
			zap.String("name", n.ExpectedName()))
		p.report.Warnings = append(p.report.Warnings, rig.RetargetWarning{
			ID:   model.RigWarningBoneMissing,
			Role: n.Role(),
			Name: n.ExpectedName(),
		})
		return
	}

	p.bind(found, n.Role())
	if n.GeneratesTarget() {
		p.spawnTarget(n, found)
	}
	for _, child := range n.Children() {
		p.apply(child, found)
	}
}

// bind はノードへ役割のボーン割当を付与し、登録簿へ記録する。
func (p *retargetPass) bind(id scene.NodeID, role rig.Role) {
	if binding, ok := scene.Get[rig.BoneBinding](p.graph, id); ok {
		binding.Add(role)
	} else {
		scene.Insert(p.graph, id, rig.NewBoneBinding(role))
	}
	p.registry.Record(role, rig.KindBone, id)
	p.report.BoundRoles++
}

// spawnTarget はボーンのワールド位置にIKターゲットノードをアーマチュア直下へ生成する。
func (p *retargetPass) spawnTarget(n *rig.SchemaNode, bone scene.NodeID) {
	boneWorld, _ := p.graph.World(bone)
	armatureWorld, _ := p.graph.World(p.armature)
	local := mmath.NewTransformAt(armatureWorld.InverseTransformPoint(boneWorld.Translation))

	target := p.graph.SpawnChild(p.armature, rig.TargetName(n.Role()), local)
	if target == scene.InvalidNode {
		p.logger.Warn(messages.LogTargetSpawnFailed, zap.String("role", n.Role().String()))
		p.report.Warnings = append(p.report.Warnings, rig.RetargetWarning{
			ID:   model.RigWarningTargetSpawnFailed,
			Role: n.Role(),
			Name: rig.TargetName(n.Role()),
		})
		return
	}
	scene.Insert(p.graph, target, rig.TargetNode{Role: n.Role()})
	p.registry.Record(n.Role(), rig.KindTarget, target)
	p.report.TargetsMade++

	if chainLength, ok := n.IkChainLength(); ok {
		scene.Insert(p.graph, bone, rig.NewIkConstraintSpec(target, chainLength))
	}
}

// MeasureHipsToHead は登録簿の腰ボーンと頭ボーンのワールド鉛直距離を返す。
func MeasureHipsToHead(g *scene.Graph, avatarRoot scene.NodeID) (float64, bool) {
	registry, ok := scene.Get[rig.RoleRegistry](g, avatarRoot)
	if !ok {
		return 0, false
	}
	hips, hipsOk := registry.Lookup(rig.Hips, rig.KindBone)
	head, headOk := registry.Lookup(rig.Head, rig.KindBone)
	if !hipsOk || !headOk {
		return 0, false
	}
	hipsWorld, _ := g.World(hips)
	headWorld, _ := g.World(head)
	distance := headWorld.Translation.Y - hipsWorld.Translation.Y
	if distance <= 0 {
		return 0, false
	}
	return distance, true
}
