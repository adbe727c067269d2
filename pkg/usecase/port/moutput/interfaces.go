// 指示: miu200521358
package moutput

import (
	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
)

// IRigReader はリグ記述ファイルの読み込み契約を表す。
type IRigReader interface {
	// CanLoad は読み込み可能な形式か判定する。
	CanLoad(path string) bool
	// Load はリグ記述を読み込み、グラフへノードを生成してルートを返す。
	Load(path string, g *scene.Graph) (scene.NodeID, error)
}

// IReportWriter はリターゲット結果の書き込み契約を表す。
type IReportWriter interface {
	// Save は結果を保存する。
	Save(path string, summary *model.RetargetSummary) error
}

// ITrackingSource は役割ごとの入力姿勢を提供する契約を表す。
type ITrackingSource interface {
	// TrackedPose は役割の現在姿勢を返す。姿勢が無い場合は false を返す。
	TrackedPose(role rig.Role) (mmath.Transform, bool)
}
