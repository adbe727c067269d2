// 指示: miu200521358
package io_rig

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	json "github.com/goccy/go-json"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/mmath"
	"github.com/miu200521358/mu_rigretarget/pkg/domain/scene"
	"github.com/miu200521358/mu_rigretarget/pkg/infra/mlogging"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

const (
	// maxRigDepth はリグ記述の入れ子上限を表す。
	maxRigDepth = 256
	// minRotationNorm は回転クォータニオンとして扱う最小ノルムを表す。
	minRotationNorm = 1e-9
)

// rigNodeDocument はリグ記述ファイルのノード要素を表す。
type rigNodeDocument struct {
	Name        string            `json:"name" yaml:"name"`
	Translation []float64         `json:"translation" yaml:"translation"`
	Rotation    []float64         `json:"rotation" yaml:"rotation"`
	Scale       []float64         `json:"scale" yaml:"scale"`
	Children    []rigNodeDocument `json:"children" yaml:"children"`
}

// RigRepository はリグ記述ファイル(YAML/JSON)の読み込みを表す。
type RigRepository struct{}

// NewRigRepository はRigRepositoryを生成する。
func NewRigRepository() *RigRepository {
	return &RigRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *RigRepository) CanLoad(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// InferName はパスから表示名を推定する。
func (r *RigRepository) InferName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Load はリグ記述を読み込み、グラフへノードを生成してルートを返す。
// 記述全体を検証してからノードを生成するため、失敗時にグラフは変更されない。
func (r *RigRepository) Load(path string, g *scene.Graph) (scene.NodeID, error) {
	if !r.CanLoad(path) {
		return scene.InvalidNode, newIoExtInvalid(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return scene.InvalidNode, newIoFileNotFound(path, err)
		}
		return scene.InvalidNode, newIoParseFailed("リグ記述ファイルの読み取りに失敗しました", err)
	}

	doc := rigNodeDocument{}
	if err := decodeDocument(path, b, &doc); err != nil {
		return scene.InvalidNode, newIoParseFailed("リグ記述の解析に失敗しました", err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		doc.Name = r.InferName(path)
	}

	prepared, count, err := prepareRigNode(doc, "", 0)
	if err != nil {
		return scene.InvalidNode, err
	}
	root := spawnRigNode(g, scene.InvalidNode, prepared)
	mlogging.DefaultLogger().Debug("リグ記述読込完了",
		zap.String("file", filepath.Base(path)),
		zap.Int("nodes", count))
	return root, nil
}

// preparedRigNode は検証済みのノード定義を表す。
type preparedRigNode struct {
	name     string
	local    mmath.Transform
	children []preparedRigNode
}

// prepareRigNode はノード定義を検証し、名前の正規化と変換の解決を行う。
func prepareRigNode(doc rigNodeDocument, parentPath string, depth int) (preparedRigNode, int, error) {
	name := norm.NFC.String(strings.TrimSpace(doc.Name))
	nodePath := parentPath + "/" + name
	if depth > maxRigDepth {
		return preparedRigNode{}, 0, newIoParseFailed("リグ記述の階層が深すぎます: %s", nil, nodePath)
	}
	if name == "" {
		return preparedRigNode{}, 0, newIoParseFailed("ノード名が未設定です: parent=%s", nil, parentPath)
	}
	local, err := resolveLocalTransform(doc)
	if err != nil {
		return preparedRigNode{}, 0, newIoParseFailed("ノード変換が不正です: %s", err, nodePath)
	}

	prepared := preparedRigNode{name: name, local: local}
	count := 1
	for _, child := range doc.Children {
		preparedChild, childCount, err := prepareRigNode(child, nodePath, depth+1)
		if err != nil {
			return preparedRigNode{}, 0, err
		}
		prepared.children = append(prepared.children, preparedChild)
		count += childCount
	}
	return prepared, count, nil
}

// spawnRigNode は検証済みノードをグラフへ生成する。
func spawnRigNode(g *scene.Graph, parent scene.NodeID, n preparedRigNode) scene.NodeID {
	var id scene.NodeID
	if parent == scene.InvalidNode {
		id = g.SpawnAt(n.name, n.local)
	} else {
		id = g.SpawnChild(parent, n.name, n.local)
	}
	for _, child := range n.children {
		spawnRigNode(g, id, child)
	}
	return id
}

// resolveLocalTransform はノード定義のローカル変換を解決する。未指定要素は単位値を使う。
func resolveLocalTransform(doc rigNodeDocument) (mmath.Transform, error) {
	local := mmath.NewTransform()
	if doc.Translation != nil {
		v, err := toVec3(doc.Translation, "translation")
		if err != nil {
			return local, err
		}
		local.Translation = v
	}
	if doc.Rotation != nil {
		if len(doc.Rotation) != 4 {
			return local, newIoParseFailed("rotation の要素数は4である必要があります: %d", nil, len(doc.Rotation))
		}
		q := mgl64.Quat{W: doc.Rotation[3], V: mgl64.Vec3{doc.Rotation[0], doc.Rotation[1], doc.Rotation[2]}}
		if q.Len() < minRotationNorm || math.IsNaN(q.Len()) {
			return local, newIoParseFailed("rotation が単位化できません", nil)
		}
		local.Rotation = q.Normalize()
	}
	if doc.Scale != nil {
		v, err := toVec3(doc.Scale, "scale")
		if err != nil {
			return local, err
		}
		local.Scale = v
	}
	return local, nil
}

// toVec3 は3要素配列をベクトルへ変換する。
func toVec3(values []float64, field string) (r3.Vec, error) {
	if len(values) != 3 {
		return r3.Vec{}, newIoParseFailed("%s の要素数は3である必要があります: %d", nil, field, len(values))
	}
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return r3.Vec{}, newIoParseFailed("%s に有限でない値が含まれています", nil, field)
		}
	}
	return r3.Vec{X: values[0], Y: values[1], Z: values[2]}, nil
}

// decodeDocument は拡張子に応じてYAMLまたはJSONを解析する。
func decodeDocument(path string, b []byte, out any) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(b, out)
	}
	return yaml.Unmarshal(b, out)
}
