// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/miu200521358/mu_rigretarget/pkg/usecase/port/moutput"
)

// RetargetProgressEventType はリターゲット処理の進捗イベント種別を表す。
type RetargetProgressEventType string

const (
	// RetargetProgressEventTypeInputValidated は入力検証完了イベントを表す。
	RetargetProgressEventTypeInputValidated RetargetProgressEventType = "input_validated"
	// RetargetProgressEventTypeRigLoaded はリグ読み込み完了イベントを表す。
	RetargetProgressEventTypeRigLoaded RetargetProgressEventType = "rig_loaded"
	// RetargetProgressEventTypeRetargeted は役割割当完了イベントを表す。
	RetargetProgressEventTypeRetargeted RetargetProgressEventType = "retargeted"
	// RetargetProgressEventTypeFrameUpdated は初回フレーム更新完了イベントを表す。
	RetargetProgressEventTypeFrameUpdated RetargetProgressEventType = "frame_updated"
	// RetargetProgressEventTypeReportSaved は結果保存完了イベントを表す。
	RetargetProgressEventTypeReportSaved RetargetProgressEventType = "report_saved"
)

// RetargetProgressEvent はリターゲット処理の進捗イベントを表す。
type RetargetProgressEvent struct {
	Type         RetargetProgressEventType
	NodeCount    int
	BoneCount    int
	TargetCount  int
	WarningCount int
}

// IRetargetProgressReporter はリターゲット処理の進捗通知契約を表す。
type IRetargetProgressReporter interface {
	// ReportRetargetProgress はリターゲット処理進捗を通知する。
	ReportRetargetProgress(event RetargetProgressEvent)
}

// RetargetRequest はリグ記述ファイルのリターゲット要求を表す。
type RetargetRequest struct {
	InputPath          string
	OutputPath         string
	HipsToHeadDistance float64
	LocalUser          bool
	Reader             moutput.IRigReader
	Writer             moutput.IReportWriter
	ProgressReporter   IRetargetProgressReporter
}

// RetargetResult はリターゲット結果を表す。
type RetargetResult struct {
	Root       scene.NodeID
	Report     rig.RetargetReport
	Summary    *model.RetargetSummary
	OutputPath string
}

// reportRetargetProgress はリターゲット処理の進捗を通知する。
func reportRetargetProgress(reporter IRetargetProgressReporter, event RetargetProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportRetargetProgress(event)
}
