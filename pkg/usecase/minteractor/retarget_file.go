// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_rigretarget/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/rig"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
)

// RetargetFile はリグ記述ファイルを読み込み、アバターとして登録して役割を割り当てる。
// 出力パスが指定されている場合は結果を保存する。
func (uc *RigUsecase) RetargetFile(request RetargetRequest) (*RetargetResult, error) {
	if strings.TrimSpace(request.InputPath) == "" {
		return nil, fmt.Errorf("入力リグパスが未指定です")
	}
	outputPath, err := resolveReportOutputPath(request.OutputPath)
	if err != nil {
		return nil, err
	}
	reportRetargetProgress(request.ProgressReporter, RetargetProgressEvent{
		Type: RetargetProgressEventTypeInputValidated,
	})

	schedule := uc.Install()
	root, err := uc.LoadRig(request.Reader, request.InputPath)
	if err != nil {
		return nil, err
	}
	reportRetargetProgress(request.ProgressReporter, RetargetProgressEvent{
		Type:      RetargetProgressEventTypeRigLoaded,
		NodeCount: uc.graph.Len(),
	})

	scene.Insert(uc.graph, root, rig.AvatarInstance{HipsToHeadDistance: request.HipsToHeadDistance})
	report, ok := scene.Get[rig.RetargetReport](uc.graph, root)
	if !ok {
		return nil, fmt.Errorf("リターゲット結果が見つかりません")
	}
	reportRetargetProgress(request.ProgressReporter, RetargetProgressEvent{
		Type:         RetargetProgressEventTypeRetargeted,
		BoneCount:    report.BoundRoles,
		TargetCount:  report.TargetsMade,
		WarningCount: len(report.Warnings),
	})

	if request.LocalUser {
		scene.Insert(uc.graph, root, rig.LocalUserFlag{})
	}
	schedule.Update()
	reportRetargetProgress(request.ProgressReporter, RetargetProgressEvent{
		Type: RetargetProgressEventTypeFrameUpdated,
	})

	summary := BuildSummary(uc.graph, root, request.InputPath)
	if outputPath != "" {
		if err := uc.SaveReport(request.Writer, outputPath, summary); err != nil {
			return nil, fmt.Errorf("%s: %w", messages.MessageSaveFailed, err)
		}
		reportRetargetProgress(request.ProgressReporter, RetargetProgressEvent{
			Type: RetargetProgressEventTypeReportSaved,
		})
	}
	return &RetargetResult{
		Root:       root,
		Report:     *report,
		Summary:    summary,
		OutputPath: outputPath,
	}, nil
}
