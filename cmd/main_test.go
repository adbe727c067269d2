// 指示: miu200521358
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/model"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mconfig"
)

const cliRigYAML = `name: Avatar
children:
  - name: Armature
    children:
      - name: Hips
        translation: [0, 1, 0]
        children:
          - name: Spine
            translation: [0, 0.1, 0]
            children:
              - name: Chest
                translation: [0, 0.2, 0]
                children:
                  - name: Neck
                    translation: [0, 0.2, 0]
                    children:
                      - name: Head
                        translation: [0, 0.1, 0]
`

// writeCliRig はテスト用リグ記述を書き出す。
func writeCliRig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avatar.yaml")
	if err := os.WriteFile(path, []byte(cliRigYAML), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

// isolateEnv は設定上書き用の環境変数を無効化する。
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(mconfig.EnvLogLevel, "error")
	t.Setenv(mconfig.EnvProfile, "")
}

func TestRunRetargetWritesReport(t *testing.T) {
	isolateEnv(t)
	inPath := writeCliRig(t)
	outPath := filepath.Join(t.TempDir(), "report", "avatar.json")
	out := bytes.NewBuffer(nil)
	errOut := bytes.NewBuffer(nil)

	if err := run([]string{"retarget", inPath, "--out", outPath}, out, errOut); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "割当 6 / 役割 18, ターゲット 2, 警告 4") {
		t.Fatalf("summary mismatch: %s", out.String())
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("report not found: %v", err)
	}
	summary := model.RetargetSummary{}
	if err := json.Unmarshal(b, &summary); err != nil {
		t.Fatalf("report parse failed: %v", err)
	}
	if summary.Armature != "Armature" || len(summary.Targets) != 2 {
		t.Fatalf("report mismatch: %+v", summary)
	}
	if summary.HipsToHeadDistance <= 0 {
		t.Fatalf("hips to head should be measured: %v", summary.HipsToHeadDistance)
	}
	if summary.WarningIDs[model.RigWarningBoneMissing] != 4 {
		t.Fatalf("missing limb warnings expected: %v", summary.WarningIDs)
	}
}

func TestRunRetargetUsesGivenDistance(t *testing.T) {
	isolateEnv(t)
	inPath := writeCliRig(t)
	outPath := filepath.Join(t.TempDir(), "avatar.yaml")

	err := run([]string{"retarget", "--in", inPath, "-o", outPath, "--hips-to-head", "0.8", "--local-user"}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("report not found: %v", err)
	}
	if !strings.Contains(string(b), "hips_to_head_distance: 0.8") {
		t.Fatalf("distance mismatch: %s", string(b))
	}
}

func TestRunRetargetWithProfileFromConfig(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(profilePath, []byte("names:\n  Head: Kopf\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg := mconfig.DefaultConfig()
	cfg.Rig.Profile = profilePath
	cfg.Logging.Level = "error"
	configPath := filepath.Join(dir, "config.yaml")
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("config save failed: %v", err)
	}
	out := bytes.NewBuffer(nil)

	if err := run([]string{"retarget", writeCliRig(t), "--config", configPath}, out, bytes.NewBuffer(nil)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "role=Head name=Kopf") {
		t.Fatalf("head warning expected with custom profile: %s", out.String())
	}
}

func TestRunRetargetErrors(t *testing.T) {
	isolateEnv(t)
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "no input", args: []string{"retarget"}, want: "リグ記述ファイルを指定してください"},
		{name: "unknown profile", args: []string{"retarget", writeCliRig(t), "--profile", "unknown"}, want: "命名プロファイル"},
		{name: "unsupported input", args: []string{"retarget", "avatar.fbx"}, want: "未対応"},
		{name: "negative distance", args: []string{"retarget", writeCliRig(t), "--hips-to-head", "-1"}, want: "0以上"},
		{name: "bad output", args: []string{"retarget", writeCliRig(t), "--out", "report.pmx"}, want: ".json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.args, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRunProfilesListsBuiltins(t *testing.T) {
	out := bytes.NewBuffer(nil)
	if err := run([]string{"profiles"}, out, bytes.NewBuffer(nil)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("profile count mismatch: %v", lines)
	}
	if !strings.HasPrefix(lines[0], "default\tArmature\t") || !strings.HasPrefix(lines[1], "vrm\tArmature\t") {
		t.Fatalf("profile lines mismatch: %v", lines)
	}
	if !strings.Contains(lines[1], "HandL=leftHand") {
		t.Fatalf("vrm names missing: %s", lines[1])
	}
}
