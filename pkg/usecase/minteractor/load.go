// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_rigretarget/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/miu200521358/mu_rigretarget/pkg/usecase/port/moutput"
)

// LoadRig はリグ記述ファイルを読み込み、グラフ上のルートノードを返す。
func (uc *RigUsecase) LoadRig(rep moutput.IRigReader, path string) (scene.NodeID, error) {
	reader := rep
	if reader == nil {
		reader = uc.rigReader
	}
	if reader == nil {
		return scene.InvalidNode, fmt.Errorf("リグ読み込みリポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return scene.InvalidNode, fmt.Errorf("入力リグパスが未指定です")
	}
	if !reader.CanLoad(path) {
		return scene.InvalidNode, fmt.Errorf("未対応のリグ記述形式です: %s", path)
	}
	root, err := reader.Load(path, uc.graph)
	if err != nil {
		return scene.InvalidNode, fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
	}
	if !uc.graph.Exists(root) {
		return scene.InvalidNode, fmt.Errorf("リグ読み込み結果が空です")
	}
	return root, nil
}
