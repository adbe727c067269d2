// 指示: miu200521358
package io_rig

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// sampleSummary はテスト用の結果要約を返す。
func sampleSummary() *model.RetargetSummary {
	return &model.RetargetSummary{
		Source:             "avatar.yaml",
		Profile:            "default",
		Avatar:             "Avatar",
		Armature:           "Armature",
		HipsToHeadDistance: 0.6,
		Bones: []model.BoneSummary{
			{Role: "Root", Node: "Armature"},
			{Role: "Head", Node: "Head", ChainLength: 1},
		},
		Targets: []model.TargetSummary{
			{Role: "Head", Node: "Target:Head", Position: [3]float64{0, 1.6, 0}},
		},
		Warnings:   []model.WarningSummary{{ID: model.RigWarningBoneMissing, Role: "Spine", Name: "Spine"}},
		WarningIDs: map[string]int{model.RigWarningBoneMissing: 1},
	}
}

func TestReportRepositorySaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	require.NoError(t, NewReportRepository().Save(path, sampleSummary()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	got := model.RetargetSummary{}
	require.NoError(t, json.Unmarshal(b, &got))
	if diff := cmp.Diff(*sampleSummary(), got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	raw := map[string]any{}
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Contains(t, raw, model.RigWarningReportKey)
}

func TestReportRepositorySaveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yml")
	require.NoError(t, NewReportRepository().Save(path, sampleSummary()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	got := model.RetargetSummary{}
	require.NoError(t, yaml.Unmarshal(b, &got))
	if diff := cmp.Diff(*sampleSummary(), got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	require.Contains(t, string(b), "hips_to_head_distance: 0.6")
}

func TestReportRepositorySaveErrors(t *testing.T) {
	repository := NewReportRepository()

	err := repository.Save(filepath.Join(t.TempDir(), "report.pmx"), sampleSummary())
	require.ErrorIs(t, err, ErrExtInvalid)
	require.Error(t, repository.Save(filepath.Join(t.TempDir(), "report.json"), nil))
}
