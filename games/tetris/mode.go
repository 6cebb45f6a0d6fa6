package tetris

import "time"

// Mode drives the board for one frame. HumanMode follows player input,
// AgentMode lets the heuristic agent place pieces.
type Mode interface {
	Name() string
	Board() *Board
	Update(isTick bool, now time.Time, in Input) MoveResult
}

// HumanMode applies debounced player commands plus gravity.
type HumanMode struct {
	board    *Board
	debounce *Debouncer
}

func NewHumanMode(b *Board, debounce *Debouncer) *HumanMode {
	return &HumanMode{board: b, debounce: debounce}
}

func (m *HumanMode) Name() string  { return "player" }
func (m *HumanMode) Board() *Board { return m.board }

func (m *HumanMode) Update(isTick bool, now time.Time, in Input) MoveResult {
	dCol, dRow := 0, 0
	if isTick {
		dRow++
	}

	ready := m.debounce.Ready(now)
	accepted := false
	if ready && in.Right {
		dCol++
		accepted = true
	}
	if ready && in.Left {
		dCol--
		accepted = true
	}
	if ready && in.Down {
		dRow++
		accepted = true
	}
	if accepted {
		m.debounce.Accept(now)
	}

	if in.Rotate {
		m.board.Rotate()
	}

	// a forced step and a soft drop in the same frame still move one row
	dRow = min(dRow, 1)

	var res MoveResult
	if dCol != 0 {
		res = m.board.Move(dCol, 0, false)
	}
	if dRow != 0 {
		res = m.board.Move(0, dRow, true)
	}
	return res
}

// AgentMode places one piece per tick at the agent's best placement.
type AgentMode struct {
	board *Board
	agent *Agent
}

func NewAgentMode(b *Board, a *Agent) *AgentMode {
	return &AgentMode{board: b, agent: a}
}

func (m *AgentMode) Name() string  { return "agent" }
func (m *AgentMode) Board() *Board { return m.board }
func (m *AgentMode) Agent() *Agent { return m.agent }

func (m *AgentMode) Update(isTick bool, _ time.Time, _ Input) MoveResult {
	if !isTick {
		return MoveResult{}
	}
	res, _ := m.agent.Play(m.board)
	return res
}
