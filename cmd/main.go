// 指示: miu200521358
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/miu200521358/mu_rigretarget/pkg/adapter/io_rig"
	"github.com/miu200521358/mu_rigretarget/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mconfig"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mlogging"
	"github.com/miu200521358/mu_rigretarget/pkg/usecase/minteractor"
	"github.com/spf13/cobra"
)

const appName = "mu_rigretarget"

// options はCLI引数を保持する。
type options struct {
	inputPath       string
	outputPath      string
	profile         string
	configPath      string
	hipsToHead      float64
	hipsToHeadGiven bool
	localUser       bool
	verbose         bool
}

// main はリグ記述ファイルのリターゲットを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	root := newRootCommand(out, errOut)
	root.SetArgs(args)
	return root.Execute()
}

// newRootCommand はルートコマンドを生成する。
func newRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         messages.HelpUsage,
		Long:          messages.HelpUsageTitle + ": " + appName + " retarget <rig> [--profile name|path] [--out report]",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(newRetargetCommand(out), newProfilesCommand(out))
	return root
}

// newRetargetCommand はリターゲットコマンドを生成する。
func newRetargetCommand(out io.Writer) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "retarget [rig]",
		Short: messages.HelpUsage,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.inputPath == "" && len(args) > 0 {
				opts.inputPath = args[0]
			}
			opts.hipsToHeadGiven = cmd.Flags().Changed("hips-to-head")
			if err := opts.validate(); err != nil {
				return err
			}
			return retarget(opts, out)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.inputPath, "in", "", messages.LabelRigPath)
	flags.StringVarP(&opts.outputPath, "out", "o", "", messages.LabelReportPath)
	flags.StringVarP(&opts.profile, "profile", "p", "", messages.LabelProfile)
	flags.StringVarP(&opts.configPath, "config", "c", "", messages.LabelConfigPath)
	flags.Float64Var(&opts.hipsToHead, "hips-to-head", 0, messages.LabelHipsToHead)
	flags.BoolVar(&opts.localUser, "local-user", false, messages.LabelLocalUser)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.LabelVerbose)
	return cmd
}

// newProfilesCommand は組み込みプロファイル一覧コマンドを生成する。
func newProfilesCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: messages.LabelProfilesList,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range rig.BuiltinProfileNames() {
				profile, err := rig.BuiltinProfile(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, messages.LogProfileLine, profile.Name, profile.Armature, formatProfileNames(profile))
			}
			return nil
		},
	}
}

// validate はCLI引数を検証する。
func (opts options) validate() error {
	if strings.TrimSpace(opts.inputPath) == "" {
		return fmt.Errorf("%s (--in)", messages.MessageInputRequired)
	}
	if opts.hipsToHeadGiven && opts.hipsToHead < 0 {
		return fmt.Errorf("腰-頭距離は0以上を指定してください: %f", opts.hipsToHead)
	}
	return nil
}

// retarget は設定を解決してリターゲットを実行し、結果を表示する。
func retarget(opts options, out io.Writer) error {
	cfg, err := mconfig.Load(opts.configPath)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if opts.verbose {
		level = "debug"
	}
	logger, err := mlogging.NewLogger(level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	mlogging.SetDefaultLogger(logger)

	profile := cfg.Rig.Profile
	if strings.TrimSpace(opts.profile) != "" {
		profile = opts.profile
	}
	schema, err := io_rig.ResolveSchema(profile)
	if err != nil {
		return fmt.Errorf("命名プロファイルの解決に失敗しました: %w", err)
	}
	hipsToHead := cfg.Pose.HipsToHeadDistance
	if opts.hipsToHeadGiven {
		hipsToHead = opts.hipsToHead
	}

	usecase := minteractor.NewRigUsecase(minteractor.RigUsecaseDeps{
		Schema:                schema,
		Logger:                logger,
		RigReader:             io_rig.NewRigRepository(),
		ReportWriter:          io_rig.NewReportRepository(),
		AutoMeasureHipsToHead: cfg.Pose.AutoMeasureHipsToHead,
	})

	fmt.Fprintf(out, messages.LogLoadStart, opts.inputPath)
	if opts.outputPath != "" {
		fmt.Fprintf(out, messages.LogSaveStart, opts.outputPath)
	}
	result, err := usecase.RetargetFile(minteractor.RetargetRequest{
		InputPath:          opts.inputPath,
		OutputPath:         opts.outputPath,
		HipsToHeadDistance: hipsToHead,
		LocalUser:          opts.localUser,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", messages.MessageRetargetFailed, err)
	}

	fmt.Fprintf(out, messages.LogRetargetSummary,
		result.Report.BoundRoles,
		len(rig.AllRoles()),
		result.Report.TargetsMade,
		len(result.Summary.Warnings))
	for _, warning := range result.Summary.Warnings {
		fmt.Fprintf(out, messages.LogWarningLine, warning.ID, warning.Role, warning.Name)
	}
	return nil
}

// formatProfileNames はプロファイルの役割名対応を表示用に整形する。
func formatProfileNames(profile rig.NamingProfile) string {
	roles := make([]rig.Role, 0, len(profile.Names))
	for role := range profile.Names {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	pairs := make([]string, 0, len(roles))
	for _, role := range roles {
		pairs = append(pairs, role.String()+"="+profile.Names[role])
	}
	return strings.Join(pairs, ",")
}
