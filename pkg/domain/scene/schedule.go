// 指示: miu200521358
package scene

// System は1フレームに1回実行される処理を表す。
type System func(g *Graph)

// stage は順序付きで連続実行されるシステム群を表す。
type stage struct {
	name    string
	systems []System
}

// Schedule は登録順にステージを実行するフレームスケジュールを表す。
type Schedule struct {
	graph  *Graph
	stages []stage
}

// NewSchedule はグラフに対するフレームスケジュールを生成する。
func NewSchedule(g *Graph) *Schedule {
	return &Schedule{graph: g}
}

// AddSystems はステージを末尾に追加する。ステージ内のシステムは引数順に実行される。
func (s *Schedule) AddSystems(name string, systems ...System) *Schedule {
	s.stages = append(s.stages, stage{name: name, systems: systems})
	return s
}

// StageNames は実行順のステージ名一覧を返す。
func (s *Schedule) StageNames() []string {
	names := make([]string, 0, len(s.stages))
	for _, st := range s.stages {
		names = append(names, st.name)
	}
	return names
}

// Graph は対象グラフを返す。
func (s *Schedule) Graph() *Graph {
	return s.graph
}

// Update は1フレーム分の全ステージを実行する。
func (s *Schedule) Update() {
	s.graph.BeginFrame()
	for _, st := range s.stages {
		for _, system := range st.systems {
			system(s.graph)
		}
	}
	s.graph.EndFrame()
}
