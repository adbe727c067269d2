// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_rigretarget/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/control"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"go.uber.org/zap"
)

// ApplyRemoteTransform は受信したローカル変換をノードへ反映する。
// ノードが同期除外中、または存在しない場合は反映せず false を返す。
func ApplyRemoteTransform(g *scene.Graph, id scene.NodeID, local mmath.Transform) bool {
	if !g.Exists(id) || control.Excluded[mmath.Transform](g, id) {
		return false
	}
	return g.SetLocal(id, local)
}

// ApplyRemoteTransform は受信したローカル変換をユースケースのグラフへ反映する。
func (uc *RigUsecase) ApplyRemoteTransform(id scene.NodeID, local mmath.Transform) bool {
	if ApplyRemoteTransform(uc.graph, id, local) {
		return true
	}
	uc.logger.Debug(messages.LogRemoteRejected, zap.Uint64("node", uint64(id)))
	return false
}
