// 指示: miu200521358
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_rigretarget/pkg/adapter/io_rig"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mlogging"
	"github.com/miu200521358/mu_rigretarget/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig はバッチリターゲットの実行設定を表す。
type batchConfig struct {
	InputDir   string
	OutputRoot string
	Profile    string
	DryRun     bool
	FailFast   bool
	Verbose    bool
}

// retargetEntry は1リグ分の入力情報を表す。
type retargetEntry struct {
	Index      int
	SourcePath string
	RigName    string
	OutputPath string
}

// retargetResult は1リグ分のリターゲット結果を表す。
type retargetResult struct {
	Entry      retargetEntry
	Status     string
	Duration   time.Duration
	Err        error
	Warnings   int
	StageInfo  string
	BoundRoles int
}

// progressCollector はリターゲット進捗イベントを収集する。
type progressCollector struct {
	eventCounts map[minteractor.RetargetProgressEventType]int
	nodeMax     int
	targetMax   int
}

// main は指定ディレクトリのリグ記述を一括でリターゲットする。
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run は実行設定を解決して一括リターゲットを実行し、終了コードを返す。
func run(args []string, out io.Writer, errOut io.Writer) int {
	exitCode := 0
	cmd := newBatchCommand(out, &exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	return exitCode
}

// newBatchCommand はバッチ実行コマンドを生成する。
func newBatchCommand(out io.Writer, exitCode *int) *cobra.Command {
	config := batchConfig{}
	cmd := &cobra.Command{
		Use:           "integration_test <input-dir>",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InputDir = filepath.Clean(strings.TrimSpace(args[0]))
			if strings.TrimSpace(config.OutputRoot) == "" {
				defaultOutputRoot, err := resolveDefaultOutputRoot()
				if err != nil {
					return err
				}
				config.OutputRoot = defaultOutputRoot
			}
			config.OutputRoot = filepath.Clean(config.OutputRoot)

			entries, err := buildRetargetEntries(config.InputDir, config.OutputRoot)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return errors.New("リターゲット対象のリグ記述がありません")
			}
			results := executeBatchRetarget(out, config, entries)
			printBatchSummary(out, results)
			for _, result := range results {
				if result.Status == "failed" {
					*exitCode = 1
					break
				}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&config.OutputRoot, "output-root", "", "結果の出力ルートディレクトリ")
	flags.StringVar(&config.Profile, "profile", "", "命名プロファイル名、またはプロファイルファイルのパス")
	flags.BoolVar(&config.DryRun, "dry-run", false, "実処理せず、入力解決と出力先計画のみ表示する")
	flags.BoolVar(&config.FailFast, "fail-fast", false, "失敗時に即時終了する")
	flags.BoolVar(&config.Verbose, "verbose", false, "詳細ログを出力する")
	return cmd
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	return filepath.Join(filepath.Dir(currentFilePath), "output"), nil
}

// buildRetargetEntries は入力ディレクトリ直下のリグ記述から対象エントリを生成する。
func buildRetargetEntries(inputDir string, outputRoot string) ([]retargetEntry, error) {
	dirEntries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("入力ディレクトリの読み込みに失敗しました: %w", err)
	}
	repository := io_rig.NewRigRepository()
	paths := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !repository.CanLoad(dirEntry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(inputDir, dirEntry.Name()))
	}
	sort.Strings(paths)

	entries := make([]retargetEntry, 0, len(paths))
	for i, path := range paths {
		rigName := sanitizePathComponent(repository.InferName(path))
		caseDir := filepath.Join(outputRoot, fmt.Sprintf("%03d_%s", i+1, rigName))
		entries = append(entries, retargetEntry{
			Index:      i + 1,
			SourcePath: path,
			RigName:    rigName,
			OutputPath: filepath.Join(caseDir, rigName+"_report.json"),
		})
	}
	return entries, nil
}

// executeBatchRetarget は全リグのリターゲットを順次実行する。
func executeBatchRetarget(out io.Writer, config batchConfig, entries []retargetEntry) []retargetResult {
	results := make([]retargetResult, 0, len(entries))
	total := len(entries)
	for _, entry := range entries {
		fmt.Fprintf(out, "[%d/%d] リターゲット開始: rig=%s\n", entry.Index, total, entry.RigName)
		result := retargetRigEntry(config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Fprintf(out, "[%d/%d] リターゲット成功: rig=%s bound=%d warnings=%d output=%s elapsed=%s\n",
				entry.Index, total, entry.RigName, result.BoundRoles, result.Warnings, entry.OutputPath, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.StageInfo) != "" {
				fmt.Fprintf(out, "[%d/%d] 進捗: %s\n", entry.Index, total, result.StageInfo)
			}
		case "dry_run":
			fmt.Fprintf(out, "[%d/%d] DRY-RUN: rig=%s input=%s output=%s\n", entry.Index, total, entry.RigName, entry.SourcePath, entry.OutputPath)
		default:
			fmt.Fprintf(out, "[%d/%d] リターゲット失敗: rig=%s reason=%v\n", entry.Index, total, entry.RigName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// retargetRigEntry は1リグ分のリターゲットを実行する。リグ毎に独立したグラフを使う。
func retargetRigEntry(config batchConfig, entry retargetEntry) retargetResult {
	result := retargetResult{Entry: entry, Status: "failed"}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(filepath.Dir(entry.OutputPath), batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}
	schema, err := io_rig.ResolveSchema(config.Profile)
	if err != nil {
		result.Err = err
		return result
	}
	level := "warn"
	if config.Verbose {
		level = "debug"
	}
	logger, err := mlogging.NewLogger(level)
	if err != nil {
		result.Err = err
		return result
	}
	defer func() { _ = logger.Sync() }()

	usecase := minteractor.NewRigUsecase(minteractor.RigUsecaseDeps{
		Schema:                schema,
		Logger:                logger.With(zap.String("rig", entry.RigName)),
		RigReader:             io_rig.NewRigRepository(),
		ReportWriter:          io_rig.NewReportRepository(),
		AutoMeasureHipsToHead: true,
	})
	startedAt := time.Now()
	collector := newProgressCollector()
	retargeted, err := usecase.RetargetFile(minteractor.RetargetRequest{
		InputPath:        entry.SourcePath,
		OutputPath:       entry.OutputPath,
		LocalUser:        true,
		ProgressReporter: collector,
	})
	if err != nil {
		result.Err = fmt.Errorf("RetargetFileに失敗しました: %w", err)
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.BoundRoles = retargeted.Report.BoundRoles
	result.Warnings = len(retargeted.Report.Warnings)
	result.StageInfo = collector.Summary()
	return result
}

// printBatchSummary は結果の集計を表示する。
func printBatchSummary(out io.Writer, results []retargetResult) {
	succeeded := 0
	failed := 0
	dryRun := 0
	warned := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
			if result.Warnings > 0 {
				warned++
			}
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Fprintf(out,
		"バッチリターゲットサマリ: total=%d succeeded=%d failed=%d with_warnings=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		warned,
		dryRun,
	)
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "rig"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "rig"
	}
	return replaced
}

// newProgressCollector は進捗収集器を生成する。
func newProgressCollector() *progressCollector {
	return &progressCollector{
		eventCounts: map[minteractor.RetargetProgressEventType]int{},
	}
}

// ReportRetargetProgress は進捗イベントを収集する。
func (collector *progressCollector) ReportRetargetProgress(event minteractor.RetargetProgressEvent) {
	if collector == nil {
		return
	}
	collector.eventCounts[event.Type]++
	if event.NodeCount > collector.nodeMax {
		collector.nodeMax = event.NodeCount
	}
	if event.TargetCount > collector.targetMax {
		collector.targetMax = event.TargetCount
	}
}

// Summary は収集した進捗の要約文字列を返す。
func (collector *progressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for stageType := range collector.eventCounts {
		types = append(types, string(stageType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"events=%d nodes=%d targets=%d stages=%s",
		len(collector.eventCounts),
		collector.nodeMax,
		collector.targetMax,
		strings.Join(types, ","),
	)
}
