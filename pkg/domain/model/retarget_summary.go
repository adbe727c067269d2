// 指示: miu200521358
package model

// RetargetSummary はリターゲット結果の出力用要約を表す。
type RetargetSummary struct {
	Source             string           `json:"source" yaml:"source"`
	Profile            string           `json:"profile" yaml:"profile"`
	Avatar             string           `json:"avatar" yaml:"avatar"`
	Armature           string           `json:"armature,omitempty" yaml:"armature,omitempty"`
	HipsToHeadDistance float64          `json:"hipsToHeadDistance" yaml:"hips_to_head_distance"`
	Bones              []BoneSummary    `json:"bones" yaml:"bones"`
	Targets            []TargetSummary  `json:"targets" yaml:"targets"`
	Warnings           []WarningSummary `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	WarningIDs         map[string]int   `json:"MU_RIGRETARGET_warnings,omitempty" yaml:"MU_RIGRETARGET_warnings,omitempty"`
}

// BoneSummary は役割に割り当てられたボーン1件を表す。
type BoneSummary struct {
	Role        string `json:"role" yaml:"role"`
	Node        string `json:"node" yaml:"node"`
	ChainLength int    `json:"ikChainLength,omitempty" yaml:"ik_chain_length,omitempty"`
}

// TargetSummary は生成されたIKターゲット1件を表す。
type TargetSummary struct {
	Role     string     `json:"role" yaml:"role"`
	Node     string     `json:"node" yaml:"node"`
	Position [3]float64 `json:"position" yaml:"position,flow"`
}

// WarningSummary は警告1件を表す。
type WarningSummary struct {
	ID   string `json:"id" yaml:"id"`
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}
