// 指示: miu200521358
package scene

import (
	"reflect"
	"slices"
)

// attachmentKey はノード付属データの型キーを表す。
type attachmentKey = reflect.Type

// Hook は付属データの追加・削除時に同期実行されるフックを表す。
type Hook func(g *Graph, id NodeID)

func keyOf[T any]() attachmentKey {
	return reflect.TypeFor[T]()
}

// Insert はノードに付属データ v を設定する。
// 未設定からの追加時のみ追加フックを実行し、追加通知を記録する。既存値は置き換える。
func Insert[T any](g *Graph, id NodeID, v T) bool {
	if !g.Exists(id) {
		return false
	}
	key := keyOf[T]()
	store, ok := g.stores[key]
	if !ok {
		store = map[NodeID]any{}
		g.stores[key] = store
	}
	if current, exists := store[id]; exists {
		*(current.(*T)) = v
		return true
	}
	value := v
	store[id] = &value
	g.pendingAdded[key] = append(g.pendingAdded[key], id)
	for _, hook := range slices.Clone(g.onAdd[key]) {
		hook(g, id)
	}
	return true
}

// Get はノードの付属データを返す。戻り値のポインタ経由で更新できる。
func Get[T any](g *Graph, id NodeID) (*T, bool) {
	store, ok := g.stores[keyOf[T]()]
	if !ok {
		return nil, false
	}
	value, ok := store[id]
	if !ok {
		return nil, false
	}
	return value.(*T), true
}

// Has はノードが付属データを持つか判定する。
func Has[T any](g *Graph, id NodeID) bool {
	_, ok := Get[T](g, id)
	return ok
}

// Remove はノードから付属データを削除し、削除フックを実行する。未設定なら何もしない。
func Remove[T any](g *Graph, id NodeID) bool {
	return g.removeKey(keyOf[T](), id)
}

// With は付属データを持つノード一覧をID昇順で返す。
func With[T any](g *Graph) []NodeID {
	store := g.stores[keyOf[T]()]
	ids := make([]NodeID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Added は当フレームで読み出せる追加通知の対象ノード一覧を返す。
func Added[T any](g *Graph) []NodeID {
	return slices.Clone(g.added[keyOf[T]()])
}

// Removed は当フレームで読み出せる削除通知の対象ノード一覧を返す。
func Removed[T any](g *Graph) []NodeID {
	return slices.Clone(g.removed[keyOf[T]()])
}

// OnAdd は付属データ T の追加フックを登録する。
func OnAdd[T any](g *Graph, hook Hook) {
	key := keyOf[T]()
	g.onAdd[key] = append(g.onAdd[key], hook)
}

// OnRemove は付属データ T の削除フックを登録する。
func OnRemove[T any](g *Graph, hook Hook) {
	key := keyOf[T]()
	g.onRemove[key] = append(g.onRemove[key], hook)
}

// OnceFor は型 T についてグラフ上で初回の呼び出しのときだけ true を返す。
// フック登録の有無とは独立に記録する。
func OnceFor[T any](g *Graph) bool {
	key := keyOf[T]()
	if _, done := g.once[key]; done {
		return false
	}
	g.once[key] = struct{}{}
	return true
}

func (g *Graph) removeKey(key attachmentKey, id NodeID) bool {
	store, ok := g.stores[key]
	if !ok {
		return false
	}
	if _, exists := store[id]; !exists {
		return false
	}
	delete(store, id)
	g.pendingRemoved[key] = append(g.pendingRemoved[key], id)
	for _, hook := range slices.Clone(g.onRemove[key]) {
		hook(g, id)
	}
	return true
}
