package domain

import (
	"golang.org/x/sync/errgroup"
)

// parallelFor はfnを0からn-1まで最大workers個のゴルーチンで実行し、全て終わるまで待つ
// fnは自分の添字の要素だけに書き込むこと
// fnはエラーを返さないので、Waitは常にnilを返す
// ワーカーの中から呼ぶとゴルーチンが入れ子になるので、最上位の手番でだけ使う
func (s *Solver) parallelFor(n int, fn func(i int)) {
	if s.workers <= 1 || n <= 1 {
		serialFor(n, fn)
		return
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// serialFor はfnを0からn-1まで順に実行する
func serialFor(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}
