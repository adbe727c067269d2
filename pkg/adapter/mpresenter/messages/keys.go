// 指示: miu200521358
// Package messages はログとCLI表示に使うメッセージを提供する。
package messages

// メッセージ一覧。
const (
	HelpUsageTitle = "使い方"
	HelpUsage      = "リグ記述ファイルを読み込み、論理スケルトンの役割を割り当てます"

	LabelRigPath      = "リグ記述ファイル(.yaml/.yml/.json)"
	LabelProfile      = "命名プロファイル名、またはプロファイルファイルのパス"
	LabelConfigPath   = "設定ファイルのパス"
	LabelReportPath   = "結果出力パス(.json/.yaml/.yml)"
	LabelHipsToHead   = "腰から頭までの鉛直距離(0で自動計測)"
	LabelVerbose      = "詳細ログを出力する"
	LabelLocalUser    = "ローカルユーザー操作として初回フレームを評価する"
	LabelProfilesList = "組み込み命名プロファイルを一覧表示します"

	MessageInputRequired  = "リグ記述ファイルを指定してください"
	MessageLoadFailed     = "リグ読み込みに失敗しました"
	MessageSaveFailed     = "結果保存に失敗しました"
	MessageRetargetFailed = "リターゲットに失敗しました"

	LogArmatureMissing    = "アーマチュアが見つかりません"
	LogBoneMissing        = "ボーンが見つかりません"
	LogTargetSpawnFailed  = "IKターゲットを生成できません"
	LogRetargetCompleted  = "リターゲット完了"
	LogHipsToHeadMeasured = "腰-頭距離を計測しました"
	LogHipsToHeadMissing  = "腰-頭距離を計測できません"
	LogLocalUserEntered   = "ローカルユーザー操作を開始しました"
	LogLocalUserExited    = "ローカルユーザー操作を終了しました"
	LogRemoteRejected     = "同期除外中のため受信姿勢を破棄しました"

	LogLoadStart       = "[mu_rigretarget] 読み込み開始: %s\n"
	LogSaveStart       = "[mu_rigretarget] 保存開始: %s\n"
	LogRetargetSummary = "[mu_rigretarget] 割当 %d / 役割 %d, ターゲット %d, 警告 %d\n"
	LogWarningLine     = "[mu_rigretarget] 警告 %s: role=%s name=%s\n"
	LogProfileLine     = "%s\t%s\t%s\n"
)
