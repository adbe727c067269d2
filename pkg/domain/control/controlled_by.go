// 指示: miu200521358

// Package control はノード属性のローカル制御宣言と同期除外の参照カウントを提供する。
//
// ControlledByClaim[A, C] は制御者 C が属性 A をローカルで駆動していることを表す。
// 同一ノード・同一属性への宣言は制御者をまたいで数えられ、1件以上ある間は
// SyncExclusionFlag[A] が付与され、受信レプリケーションによる上書きが抑止される。
// カウンタはノードと属性型の組ごとに独立している。
package control

import (
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
)

// ControlledByClaim は制御者 C による属性 A の制御宣言を表す。
type ControlledByClaim[A any, C any] struct{}

// SyncExclusionFlag は属性 A を受信同期の対象外とする印を表す。
type SyncExclusionFlag[A any] struct{}

// claimCounter はノード上の属性 A に対する制御宣言数を表す。
type claimCounter[A any] struct {
	count int
}

// Install は制御宣言 ControlledByClaim[A, C] の追加・削除フックを登録する。登録済みなら何もしない。
func Install[A any, C any](g *scene.Graph) {
	if !scene.OnceFor[ControlledByClaim[A, C]](g) {
		return
	}
	scene.OnAdd[ControlledByClaim[A, C]](g, func(g *scene.Graph, id scene.NodeID) {
		increment[A](g, id)
		if !scene.Has[SyncExclusionFlag[A]](g, id) {
			scene.Insert(g, id, SyncExclusionFlag[A]{})
		}
	})
	scene.OnRemove[ControlledByClaim[A, C]](g, func(g *scene.Graph, id scene.NodeID) {
		if decrement[A](g, id) == 0 {
			scene.Remove[claimCounter[A]](g, id)
			scene.Remove[SyncExclusionFlag[A]](g, id)
		}
	})
}

// Claim はノードに制御宣言を付与する。既に付与済みなら何もしない。
func Claim[A any, C any](g *scene.Graph, id scene.NodeID) bool {
	Install[A, C](g)
	return scene.Insert(g, id, ControlledByClaim[A, C]{})
}

// Release はノードから制御宣言を外す。
func Release[A any, C any](g *scene.Graph, id scene.NodeID) bool {
	Install[A, C](g)
	return scene.Remove[ControlledByClaim[A, C]](g, id)
}

// Excluded はノードの属性 A が受信同期の対象外か判定する。
func Excluded[A any](g *scene.Graph, id scene.NodeID) bool {
	return scene.Has[SyncExclusionFlag[A]](g, id)
}

// Count はノードの属性 A に対する制御宣言数を返す。
func Count[A any](g *scene.Graph, id scene.NodeID) int {
	counter, ok := scene.Get[claimCounter[A]](g, id)
	if !ok {
		return 0
	}
	return counter.count
}

func increment[A any](g *scene.Graph, id scene.NodeID) int {
	if counter, ok := scene.Get[claimCounter[A]](g, id); ok {
		counter.count++
		return counter.count
	}
	scene.Insert(g, id, claimCounter[A]{count: 1})
	return 1
}

// decrement は0未満にならないよう減算し、減算後の値を返す。
func decrement[A any](g *scene.Graph, id scene.NodeID) int {
	counter, ok := scene.Get[claimCounter[A]](g, id)
	if !ok {
		return 0
	}
	if counter.count > 0 {
		counter.count--
	}
	return counter.count
}
