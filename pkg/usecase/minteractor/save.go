// 指示: miu200521358
package minteractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/miu200521358/mu_rigretarget/pkg/usecase/port/moutput"
)

// SaveReport はリターゲット結果を保存する。
func (uc *RigUsecase) SaveReport(rep moutput.IReportWriter, path string, summary *model.RetargetSummary) error {
	writer := rep
	if writer == nil {
		writer = uc.reportWriter
	}
	if writer == nil {
		return fmt.Errorf("結果保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("保存先パスが未指定です")
	}
	if summary == nil {
		return fmt.Errorf("保存対象の結果が未設定です")
	}
	return writer.Save(path, summary)
}

// resolveReportOutputPath は結果保存先パスを検証する。空文字は保存しないことを表す。
func resolveReportOutputPath(outputPath string) (string, error) {
	resolved := strings.TrimSpace(outputPath)
	if resolved == "" {
		return "", nil
	}
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".json", ".yaml", ".yml":
		return resolved, nil
	}
	return "", fmt.Errorf("保存先拡張子が .json/.yaml/.yml ではありません: %s", resolved)
}
