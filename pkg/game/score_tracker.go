package game

// ScoreTracker 累计击杀奖励
//
// 分数只会通过 Add 增加、通过 Reset 归零。
// TakeChanged 提供脏标记语义：显示层只在分数变化后重新渲染文本。
type ScoreTracker struct {
	value int
	best  int // 本次进程运行中的最高分（仅内存）
	dirty bool
}

// NewScoreTracker 创建分数为 0 的计分器
// 初始为脏状态，保证 HUD 首帧显示 "Score: 0"
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{dirty: true}
}

// Add 增加分数，负数和 0 被忽略
func (s *ScoreTracker) Add(amount int) {
	if amount <= 0 {
		return
	}
	s.value += amount
	if s.value > s.best {
		s.best = s.value
	}
	s.dirty = true
}

// Reset 分数归零（进入 Playing 时调用），最高分保留
func (s *ScoreTracker) Reset() {
	s.value = 0
	s.dirty = true
}

// Value 返回当前分数
func (s *ScoreTracker) Value() int {
	return s.value
}

// Best 返回本次运行的最高分
func (s *ScoreTracker) Best() int {
	return s.best
}

// TakeChanged 返回当前分数以及自上次调用以来是否发生过变化，并清除脏标记
func (s *ScoreTracker) TakeChanged() (int, bool) {
	changed := s.dirty
	s.dirty = false
	return s.value, changed
}
