package domain

import (
	"runtime"

	"github.com/rs/zerolog/log"
)

// DefaultMaxPlies は先読みを含めた探索の手番数
const DefaultMaxPlies = 3

// Candidate は最上位の着地候補とその評価
type Candidate struct {
	Placement
	Board *Board  // 配置後の盤面（シミュレーションに失敗したらnil）
	Score float64 // この手番だけでの評価
	Best  float64 // 先読みで更新された評価
}

// Solver は平均より良い枝だけを先読みして最良の手順を探索する
type Solver struct {
	evaluator Evaluator
	maxPlies  int
	workers   int
}

// SolverOption はSolverの設定を変更する
type SolverOption func(*Solver)

// WithWorkers は評価に使うワーカー数を設定する（1以下なら逐次実行）
func WithWorkers(n int) SolverOption {
	return func(s *Solver) {
		s.workers = n
	}
}

// NewSolver は新しいSolverを生成する
func NewSolver(evaluator Evaluator, maxPlies int, opts ...SolverOption) *Solver {
	if maxPlies < 1 {
		maxPlies = 1
	}
	s := &Solver{
		evaluator: evaluator,
		maxPlies:  maxPlies,
		workers:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxPlies は探索する手番数を返す
func (s *Solver) MaxPlies() int {
	return s.maxPlies
}

// BestMoves は現在の盤面から最良の手順とその評価を返す
// 同点なら列挙順で先の候補を選ぶ
func (s *Solver) BestMoves(b *Board) ([]Move, float64, error) {
	cands, err := s.Candidates(b)
	if err != nil {
		return nil, MinScore, err
	}

	best := -1
	for i, c := range cands {
		if c.Board == nil {
			continue
		}
		if best < 0 || c.Best > cands[best].Best {
			best = i
		}
	}
	if best < 0 {
		return nil, MinScore, nil
	}
	return cands[best].Moves, cands[best].Best, nil
}

// Candidates は最上位の全候補を先読みで評価して列挙順に返す
func (s *Solver) Candidates(b *Board) ([]Candidate, error) {
	placements, err := GenerateMoves(b)
	if err != nil {
		return nil, err
	}
	cands, mean := s.expand(b, placements, s.parallelFor)
	log.Debug().Int("ply", 1).Int("candidates", len(cands)).Float64("mean", mean).Msg("expanded")

	if s.maxPlies <= 1 {
		return cands, nil
	}

	// 平均より良い候補だけを並列に先読みし、結果は候補の位置に書き込む
	// 先読みの中はワーカー内で逐次に展開する
	deeper := make([]float64, len(cands))
	found := make([]bool, len(cands))
	s.parallelFor(len(cands), func(i int) {
		c := cands[i]
		if c.Board == nil || c.Score <= mean {
			return
		}
		deeper[i], found[i] = s.deepen(c.Board, 2)
	})

	for i := range cands {
		if found[i] && deeper[i] > cands[i].Best {
			cands[i].Best = deeper[i]
		}
	}
	return cands, nil
}

// deepen は盤面bの次のピースを展開し、最深の手番で得られた最高評価を返す
// plyはbの子が属する手番で、展開できなければfalseを返す
// ワーカーの中から呼ばれるので並列化しない
func (s *Solver) deepen(b *Board, ply int) (float64, bool) {
	placements, err := GenerateMoves(b)
	if err != nil {
		return 0, false
	}
	cands, mean := s.expand(b, placements, serialFor)

	best, found := MinScore, false
	for _, c := range cands {
		if c.Board == nil {
			continue
		}
		v := c.Score
		if ply < s.maxPlies {
			if c.Score <= mean {
				continue
			}
			if d, ok := s.deepen(c.Board, ply+1); ok {
				v = d
			}
		}
		if !found || v > best {
			best, found = v, true
		}
	}
	log.Debug().Int("ply", ply).Int("candidates", len(cands)).Float64("mean", mean).Float64("best", best).Msg("expanded")
	return best, found
}

// expand は各候補を逐次シミュレーションしてからeachで評価し、成功した候補の平均を返す
func (s *Solver) expand(b *Board, placements []Placement, each func(n int, fn func(i int))) ([]Candidate, float64) {
	cands := make([]Candidate, len(placements))
	for i, p := range placements {
		cands[i] = Candidate{Placement: p, Score: MinScore, Best: MinScore}
		next, err := b.ApplyMoves(p.Moves)
		if err != nil {
			log.Debug().Err(err).Str("pose", p.Pose.String()).Msg("simulation-failed")
			continue
		}
		cands[i].Board = next
	}

	each(len(cands), func(i int) {
		if cands[i].Board == nil {
			return
		}
		score := s.evaluator.Evaluate(cands[i].Board)
		cands[i].Score = score
		cands[i].Best = score
	})

	sum, n := 0.0, 0
	for _, c := range cands {
		if c.Board != nil {
			sum += c.Score
			n++
		}
	}
	if n == 0 {
		return cands, MinScore
	}
	return cands, sum / float64(n)
}
