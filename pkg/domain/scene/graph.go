// 指示: miu200521358
package scene

import (
	"fmt"
	"slices"

	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
)

// NodeID はシーンノードの識別子を表す。
type NodeID uint64

// InvalidNode は存在しないノードを表す。
const InvalidNode NodeID = 0

// node はシーンノード1件を表す。
type node struct {
	name     string
	parent   NodeID
	children []NodeID
	local    mmath.Transform
}

// Graph は名前付き階層とノード付属データを保持するシーングラフを表す。
// フレームループ単一スレッドからの利用を前提とし、ロックは持たない。
type Graph struct {
	nodes  map[NodeID]*node
	nextID NodeID

	stores   map[attachmentKey]map[NodeID]any
	onAdd    map[attachmentKey][]Hook
	onRemove map[attachmentKey][]Hook
	once     map[attachmentKey]struct{}

	pendingAdded   map[attachmentKey][]NodeID
	pendingRemoved map[attachmentKey][]NodeID
	added          map[attachmentKey][]NodeID
	removed        map[attachmentKey][]NodeID
}

// NewGraph は空のシーングラフを生成する。
func NewGraph() *Graph {
	return &Graph{
		nodes:          map[NodeID]*node{},
		stores:         map[attachmentKey]map[NodeID]any{},
		onAdd:          map[attachmentKey][]Hook{},
		onRemove:       map[attachmentKey][]Hook{},
		once:           map[attachmentKey]struct{}{},
		pendingAdded:   map[attachmentKey][]NodeID{},
		pendingRemoved: map[attachmentKey][]NodeID{},
		added:          map[attachmentKey][]NodeID{},
		removed:        map[attachmentKey][]NodeID{},
	}
}

// Spawn は親を持たないノードを生成する。
func (g *Graph) Spawn(name string) NodeID {
	return g.SpawnAt(name, mmath.NewTransform())
}

// SpawnAt はローカル変換を指定して親を持たないノードを生成する。
func (g *Graph) SpawnAt(name string, local mmath.Transform) NodeID {
	g.nextID++
	id := g.nextID
	g.nodes[id] = &node{name: name, local: local}
	return id
}

// SpawnChild は parent の末尾の子としてノードを生成する。parent が無い場合は InvalidNode を返す。
func (g *Graph) SpawnChild(parent NodeID, name string, local mmath.Transform) NodeID {
	if !g.Exists(parent) {
		return InvalidNode
	}
	id := g.SpawnAt(name, local)
	g.link(parent, id)
	return id
}

// AddChild は child を parent の末尾の子として付け替える。
func (g *Graph) AddChild(parent NodeID, child NodeID) error {
	if !g.Exists(parent) {
		return fmt.Errorf("親ノードが存在しません: %d", parent)
	}
	if !g.Exists(child) {
		return fmt.Errorf("子ノードが存在しません: %d", child)
	}
	for cursor := parent; cursor != InvalidNode; cursor = g.nodes[cursor].parent {
		if cursor == child {
			return fmt.Errorf("循環する親子関係は設定できません: parent=%d child=%d", parent, child)
		}
	}
	g.unlink(child)
	g.link(parent, child)
	return nil
}

// Despawn はノードと子孫を削除し、付属データの削除フックを実行する。
func (g *Graph) Despawn(id NodeID) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, child := range slices.Clone(n.children) {
		g.Despawn(child)
	}
	keys := make([]attachmentKey, 0)
	for key, store := range g.stores {
		if _, exists := store[id]; exists {
			keys = append(keys, key)
		}
	}
	for _, key := range keys {
		g.removeKey(key, id)
	}
	g.unlink(id)
	delete(g.nodes, id)
}

// Exists はノードが存在するか判定する。
func (g *Graph) Exists(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len はノード数を返す。
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Name はノード名を返す。
func (g *Graph) Name(id NodeID) string {
	if n, ok := g.nodes[id]; ok {
		return n.name
	}
	return ""
}

// Parent は親ノードを返す。
func (g *Graph) Parent(id NodeID) (NodeID, bool) {
	n, ok := g.nodes[id]
	if !ok || n.parent == InvalidNode {
		return InvalidNode, false
	}
	return n.parent, true
}

// Children は宣言順の子ノード一覧を返す。
func (g *Graph) Children(id NodeID) []NodeID {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return slices.Clone(n.children)
}

// Local はローカル変換を返す。
func (g *Graph) Local(id NodeID) (mmath.Transform, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return mmath.Transform{}, false
	}
	return n.local, true
}

// SetLocal はローカル変換を設定する。
func (g *Graph) SetLocal(id NodeID, local mmath.Transform) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.local = local
	return true
}

// World はルートからローカル変換を合成したワールド変換を返す。
func (g *Graph) World(id NodeID) (mmath.Transform, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return mmath.Transform{}, false
	}
	if n.parent == InvalidNode {
		return n.local, true
	}
	parentWorld, _ := g.World(n.parent)
	return parentWorld.Mul(n.local), true
}

// BeginFrame は前フレーム間に発生した追加・削除通知を読み出し可能にする。
func (g *Graph) BeginFrame() {
	g.added, g.pendingAdded = g.pendingAdded, map[attachmentKey][]NodeID{}
	g.removed, g.pendingRemoved = g.pendingRemoved, map[attachmentKey][]NodeID{}
}

// EndFrame は当フレームの追加・削除通知を破棄する。
func (g *Graph) EndFrame() {
	g.added = map[attachmentKey][]NodeID{}
	g.removed = map[attachmentKey][]NodeID{}
}

func (g *Graph) link(parent NodeID, child NodeID) {
	g.nodes[child].parent = parent
	g.nodes[parent].children = append(g.nodes[parent].children, child)
}

func (g *Graph) unlink(child NodeID) {
	n := g.nodes[child]
	if n.parent == InvalidNode {
		return
	}
	if p, ok := g.nodes[n.parent]; ok {
		p.children = slices.DeleteFunc(p.children, func(id NodeID) bool { return id == child })
	}
	n.parent = InvalidNode
}
