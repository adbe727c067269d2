// 指示: miu200521358
package io_rig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

const (
	outputDirFileMode = 0o755
	outputFileMode    = 0o644
)

// ReportRepository はリターゲット結果の保存を表す。
type ReportRepository struct{}

// NewReportRepository はReportRepositoryを生成する。
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// CanSave は拡張子に応じて保存可否を判定する。
func (r *ReportRepository) CanSave(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Save は結果を拡張子に応じた形式で保存する。
func (r *ReportRepository) Save(path string, summary *model.RetargetSummary) error {
	if !r.CanSave(path) {
		return newIoExtInvalid(path)
	}
	if summary == nil {
		return fmt.Errorf("保存対象の結果が未設定です")
	}
	b, err := encodeSummary(path, summary)
	if err != nil {
		return fmt.Errorf("結果の変換に失敗しました: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, outputDirFileMode); err != nil {
			return fmt.Errorf("保存先ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := os.WriteFile(path, b, outputFileMode); err != nil {
		return fmt.Errorf("結果ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}

// encodeSummary は結果をJSONまたはYAMLへ変換する。
func encodeSummary(path string, summary *model.RetargetSummary) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		b, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(summary); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
