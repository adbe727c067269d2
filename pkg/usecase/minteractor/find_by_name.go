// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_rigretarget/pkg/domain/scene"

// FindByName は start の子孫から名前が target と一致するノードを探す。
// 明示スタック(LIFO)で探索し、子は宣言順に積みながら積んだ直後に名前を照合する。
// そのため直下の子を走査し終えた後は最後の子の子孫から探索が進む。
// 同名ノードが複数ある場合はこの走査順で最初に見つかったものを返す。start 自身は対象外。
func FindByName(g *scene.Graph, target string, start scene.NodeID) (scene.NodeID, bool) {
	if target == "" || !g.Exists(start) {
		return scene.InvalidNode, false
	}
	stack := []scene.NodeID{start}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range g.Children(next) {
			stack = append(stack, child)
			if g.Name(child) == target {
				return child, true
			}
		}
	}
	return scene.InvalidNode, false
}
