package domain

// MinScore は選んではならない候補を表す番兵スコア
const MinScore = -10e6

// Feature は評価特徴量の名前（重みファイルのキーと同じ）
type Feature string

const (
	Holes          Feature = "HOLES"
	RowTransitions Feature = "ROW_TRANSITIONS"
	ColTransitions Feature = "COL_TRANSITIONS"
	WellSums       Feature = "WELL_SUMS"
	Bumpiness      Feature = "BUMPINESS"
	Covers         Feature = "COVERS"
	BlockEdges     Feature = "BLOCK_EDGES"
	WallEdges      Feature = "WALL_EDGES"
	ExternalEdges  Feature = "EXTERNAL_EDGES"
	LandingHeight  Feature = "LANDING_HEIGHT"
	RowsCleared    Feature = "ROWS_CLEARED"
	PointsEarned   Feature = "POINTS_EARNED"
	BlockHeight    Feature = "BLOCK_HEIGHT"
	MaxHeight      Feature = "MAX_HEIGHT"
)

// AllFeatures は評価に使う全特徴量
var AllFeatures = []Feature{
	Holes, RowTransitions, ColTransitions, WellSums, Bumpiness, Covers,
	BlockEdges, WallEdges, ExternalEdges, LandingHeight,
	RowsCleared, PointsEarned, BlockHeight, MaxHeight,
}

// IsKnown は評価に使われる特徴量名かどうかを返す
func (f Feature) IsKnown() bool {
	for _, k := range AllFeatures {
		if k == f {
			return true
		}
	}
	return false
}

// Features は盤面から計算した特徴量の値
type Features map[Feature]float64

// Weights は特徴量ごとの係数（ない特徴量は0として扱う）
type Weights map[Feature]float64

// Unknown は評価に使われない名前の一覧を返す
func (w Weights) Unknown() []Feature {
	var unknown []Feature
	for f := range w {
		if !f.IsKnown() {
			unknown = append(unknown, f)
		}
	}
	return unknown
}

// Clone はWeightsのコピーを返す
func (w Weights) Clone() Weights {
	cp := make(Weights, len(w))
	for k, v := range w {
		cp[k] = v
	}
	return cp
}

// Evaluator はBoardを評価してスコアを返すインターフェース
type Evaluator interface {
	Evaluate(b *Board) float64
}

// WeightedEvaluator は特徴量の重み付き和で評価する
type WeightedEvaluator struct {
	weights Weights
}

// NewWeightedEvaluator は重みを指定してWeightedEvaluatorを生成する
func NewWeightedEvaluator(weights Weights) *WeightedEvaluator {
	return &WeightedEvaluator{weights: weights.Clone()}
}

// Evaluate は着地高さを盤面から計算して評価する
func (e *WeightedEvaluator) Evaluate(b *Board) float64 {
	return e.EvaluateAt(b, -1)
}

// EvaluateAt は着地高さを指定して評価する（負なら盤面から計算する）
// ピースの配置が不正ならMinScoreを返す
func (e *WeightedEvaluator) EvaluateAt(b *Board, landingHeight float64) float64 {
	features, ok := ComputeFeatures(b, landingHeight)
	if !ok {
		return MinScore
	}
	// 合計の順序を固定して、同じ盤面には常に同じスコアを返す
	score := 0.0
	for _, f := range AllFeatures {
		score += e.weights[f] * features[f]
	}
	return score
}

// ComputeFeatures は盤面の特徴量を計算する
// ピースの接触計算で配置が不正と分かった場合はfalseを返す
func ComputeFeatures(b *Board, landingHeight float64) (Features, bool) {
	l := b.Contact()
	if !l.Valid {
		return nil, false
	}
	if landingHeight < 0 {
		landingHeight = l.Shape.LandingHeight(l.Pose)
	}

	g := b.grid
	f := Features{
		BlockEdges:     float64(l.BlockEdges),
		WallEdges:      float64(l.WallEdges),
		ExternalEdges:  float64(l.BlockEdges + l.WallEdges),
		LandingHeight:  landingHeight,
		RowsCleared:    float64(b.rowsCleared),
		PointsEarned:   float64(int(1)<<b.lastCleared - 1),
		RowTransitions: float64(rowTransitions(g)),
		ColTransitions: float64(colTransitions(g)),
		WellSums:       float64(wellSums(g)),
	}

	heights := columnHeights(g)
	maxHeight, bumpiness := 0, 0
	for c, h := range heights {
		if h > maxHeight {
			maxHeight = h
		}
		if c > 0 {
			bumpiness += absInt(h - heights[c-1])
		}
	}
	holes, covers := holesAndCovers(g)

	f[Holes] = float64(holes)
	f[Covers] = float64(covers)
	f[Bumpiness] = float64(bumpiness)
	f[MaxHeight] = float64(maxHeight)
	f[BlockHeight] = float64(blockHeight(g))
	return f, true
}

// columnHeights は各列の高さ（最も上の埋まったセルから床まで）を返す
func columnHeights(g *Grid) []int {
	heights := make([]int, g.cols)
	for c := 0; c < g.cols; c++ {
		for r := 0; r < g.rows; r++ {
			if g.Get(r, c) {
				heights[c] = g.rows - r
				break
			}
		}
	}
	return heights
}

// holesAndCovers は上に埋まったセルがある空きセルの数と、その上に積まれたセル数の合計を返す
func holesAndCovers(g *Grid) (holes, covers int) {
	for c := 0; c < g.cols; c++ {
		above := 0
		for r := 0; r < g.rows; r++ {
			if g.Get(r, c) {
				above++
			} else if above > 0 {
				holes++
				covers += above
			}
		}
	}
	return holes, covers
}

// blockHeight は埋まったセルの高さの合計を返す
func blockHeight(g *Grid) int {
	sum := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Get(r, c) {
				sum += g.rows - r
			}
		}
	}
	return sum
}

// rowTransitions は行内で隣り合うセルの状態が変わる回数を数える（左右の壁は埋まっている扱い）
func rowTransitions(g *Grid) int {
	n := 0
	for r := 0; r < g.rows; r++ {
		prev := true
		for c := 0; c < g.cols; c++ {
			cur := g.Get(r, c)
			if cur != prev {
				n++
			}
			prev = cur
		}
		if !prev {
			n++
		}
	}
	return n
}

// colTransitions は列内で隣り合うセルの状態が変わる回数を数える（天井と床は埋まっている扱い）
func colTransitions(g *Grid) int {
	n := 0
	for c := 0; c < g.cols; c++ {
		prev := true
		for r := 0; r < g.rows; r++ {
			cur := g.Get(r, c)
			if cur != prev {
				n++
			}
			prev = cur
		}
		if !prev {
			n++
		}
	}
	return n
}

// wellSums は屋根のない井戸の深さを列ごとに合計する
// 両隣が埋まった（または壁の）空きセルを上から最初に見つけたら、そこから床までの空きセルを数える
func wellSums(g *Grid) int {
	sum := 0
	for c := 0; c < g.cols; c++ {
		for r := 0; r < g.rows; r++ {
			if g.Get(r, c) {
				break
			}
			if !g.filled(r, c-1) || !g.filled(r, c+1) {
				continue
			}
			for i := r; i < g.rows; i++ {
				if !g.Get(i, c) {
					sum++
				}
			}
			break
		}
	}
	return sum
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
