// 指示: miu200521358
package mconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mlogging"
	"gopkg.in/yaml.v3"
)

const (
	// EnvLogLevel はログレベルを上書きする環境変数名を表す。
	EnvLogLevel = "MU_RIG_LOG_LEVEL"
	// EnvProfile は命名プロファイルを上書きする環境変数名を表す。
	EnvProfile = "MU_RIG_PROFILE"
)

// Config はアプリケーション設定を表す。
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Rig     RigConfig     `yaml:"rig"`
	Pose    PoseConfig    `yaml:"pose"`
}

// LoggingConfig はログ設定を表す。
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// RigConfig はリターゲット対象の命名設定を表す。
type RigConfig struct {
	// Profile は組み込みプロファイル名、またはプロファイルファイルのパス。
	Profile string `yaml:"profile"`
}

// PoseConfig は姿勢合成の設定を表す。
type PoseConfig struct {
	HipsToHeadDistance    float64 `yaml:"hips_to_head_distance"`
	AutoMeasureHipsToHead bool    `yaml:"auto_measure_hips_to_head"`
}

// DefaultConfig は既定設定を返す。
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Rig:     RigConfig{Profile: rig.DefaultProfileName},
		Pose:    PoseConfig{AutoMeasureHipsToHead: true},
	}
}

// Load はYAMLファイルから設定を読み込む。ファイルが無い場合は既定設定を返す。
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("設定ファイルの解析に失敗しました: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save は設定をYAMLファイルへ保存する。
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("設定ディレクトリの作成に失敗しました: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("設定の変換に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("設定ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}

// Validate は設定値を検証する。
func (c *Config) Validate() error {
	if _, err := mlogging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if strings.TrimSpace(c.Rig.Profile) == "" {
		return fmt.Errorf("命名プロファイルが未指定です")
	}
	if c.Pose.HipsToHeadDistance < 0 {
		return fmt.Errorf("腰-頭距離は0以上を指定してください: %f", c.Pose.HipsToHeadDistance)
	}
	return nil
}

// applyEnvOverrides は環境変数による上書きを適用する。
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if profile := os.Getenv(EnvProfile); profile != "" {
		c.Rig.Profile = profile
	}
}
