// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mlogging"
	"github.com/miu200521358/mu_rigretarget/pkg/usecase/port/moutput"
	"go.uber.org/zap"
)

const (
	// StageLocalUserExits はローカルユーザー離脱処理の段階名を表す。
	StageLocalUserExits = "local_user_exits"
	// StageLocalUserEnters はローカルユーザー開始処理の段階名を表す。
	StageLocalUserEnters = "local_user_enters"
	// StageTrackedInput は入力姿勢反映の段階名を表す。
	StageTrackedInput = "tracked_input"
	// StagePose は姿勢合成の段階名を表す。
	StagePose = "pose"
)

// RigUsecaseDeps はリターゲットユースケースの依存を表す。
type RigUsecaseDeps struct {
	Graph                 *scene.Graph
	Schema                *rig.Schema
	Logger                *zap.Logger
	TrackingSource        moutput.ITrackingSource
	RigReader             moutput.IRigReader
	ReportWriter          moutput.IReportWriter
	AutoMeasureHipsToHead bool
}

// RigUsecase はアバターのリターゲットとフレーム毎の姿勢処理をまとめたユースケースを表す。
type RigUsecase struct {
	graph          *scene.Graph
	schema         *rig.Schema
	logger         *zap.Logger
	trackingSource moutput.ITrackingSource
	rigReader      moutput.IRigReader
	reportWriter   moutput.IReportWriter
	autoMeasure    bool
	schedule       *scene.Schedule
}

// NewRigUsecase はリターゲットユースケースを生成する。
func NewRigUsecase(deps RigUsecaseDeps) *RigUsecase {
	g := deps.Graph
	if g == nil {
		g = scene.NewGraph()
	}
	schema := deps.Schema
	if schema == nil {
		schema = rig.DefaultSchema()
	}
	logger := deps.Logger
	if logger == nil {
		logger = mlogging.DefaultLogger()
	}
	return &RigUsecase{
		graph:          g,
		schema:         schema,
		logger:         logger,
		trackingSource: deps.TrackingSource,
		rigReader:      deps.RigReader,
		reportWriter:   deps.ReportWriter,
		autoMeasure:    deps.AutoMeasureHipsToHead,
	}
}

// Graph は処理対象のシーングラフを返す。
func (uc *RigUsecase) Graph() *scene.Graph {
	return uc.graph
}

// Schema はリターゲットに使う役割スキーマを返す。
func (uc *RigUsecase) Schema() *rig.Schema {
	return uc.schema
}

// Install はアバター付与フックを登録し、フレームスケジュールを構築する。
// 2回目以降の呼び出しは構築済みスケジュールを返す。
func (uc *RigUsecase) Install() *scene.Schedule {
	if uc.schedule != nil {
		return uc.schedule
	}
	scene.OnAdd[rig.AvatarInstance](uc.graph, uc.onAvatarAdded)

	uc.schedule = scene.NewSchedule(uc.graph).
		AddSystems(StageLocalUserExits, newLocalUserExits(uc.logger)).
		AddSystems(StageLocalUserEnters, newLocalUserEnters(uc.logger)).
		AddSystems(StageTrackedInput, newDriveTrackedTargets(uc.trackingSource)).
		AddSystems(StagePose, copyHeadTargetRotation, orientHipsToHead)
	return uc.schedule
}

// Update は1フレーム分のシステムを実行する。
func (uc *RigUsecase) Update() {
	uc.Install().Update()
}

// onAvatarAdded はアバター付与時にリターゲットを実行する。
func (uc *RigUsecase) onAvatarAdded(g *scene.Graph, root scene.NodeID) {
	Retarget(g, root, uc.schema, uc.logger)
	if !uc.autoMeasure {
		return
	}
	avatar, ok := scene.Get[rig.AvatarInstance](g, root)
	if !ok || avatar.HipsToHeadDistance != 0 {
		return
	}
	distance, ok := MeasureHipsToHead(g, root)
	if !ok {
		uc.logger.Warn(messages.LogHipsToHeadMissing, zap.Uint64("avatar", uint64(root)))
		appendRetargetWarning(g, root, rig.RetargetWarning{
			ID:   model.RigWarningHipsToHeadUnmeasured,
			Role: rig.Head,
		})
		return
	}
	avatar.HipsToHeadDistance = distance
	uc.logger.Debug(messages.LogHipsToHeadMeasured,
		zap.Uint64("avatar", uint64(root)),
		zap.Float64("distance", distance))
}

// appendRetargetWarning はアバターのリターゲット報告へ警告を追記する。
func appendRetargetWarning(g *scene.Graph, root scene.NodeID, warning rig.RetargetWarning) {
	report, ok := scene.Get[rig.RetargetReport](g, root)
	if !ok {
		return
	}
	report.Warnings = append(report.Warnings, warning)
}
