// 指示: miu200521358
package model

const (
	// RigWarningReportKey はリターゲット警告ID集合をレポートへ出力する際のキー。
	RigWarningReportKey = "MU_RIGRETARGET_warnings"

	// RigWarningArmatureMissing はアーマチュア未検出警告。
	RigWarningArmatureMissing = "RigWarningArmatureMissing"
	// RigWarningBoneMissing は期待ボーン未検出警告。
	RigWarningBoneMissing = "RigWarningBoneMissing"
	// RigWarningTargetSpawnFailed はIKターゲット生成失敗警告。
	RigWarningTargetSpawnFailed = "RigWarningTargetSpawnFailed"
	// RigWarningHipsToHeadUnmeasured は腰-頭距離の自動計測不可警告。
	RigWarningHipsToHeadUnmeasured = "RigWarningHipsToHeadUnmeasured"
)
