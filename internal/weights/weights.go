// Package weights は評価関数の重みファイル（1行に「名前 値」）を読み書きする
package weights

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/yunxing/dropblox/internal/domain"
)

// Defaults は重みファイルが読めないときに使う重みを返す
func Defaults() domain.Weights {
	return domain.Weights{
		domain.PointsEarned:   0.378565931393,
		domain.RowTransitions: -0.548886169599,
		domain.LandingHeight:  0.71240334146,
		domain.Holes:          -1.99902287016,
		domain.BlockHeight:    -0.00978251322273,
		domain.WellSums:       -0.151923526632,
		domain.ColTransitions: -0.793256698244,
	}
}

// Read は重みを読み込む
// 空行は無視し、同じ名前が複数あれば後のものを使う
func Read(r io.Reader) (domain.Weights, error) {
	w := domain.Weights{}
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"name value\", got %q", lineNo, sc.Text())
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		w[domain.Feature(fields[0])] = v
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return w, nil
}

// Load はファイルから重みを読み込む
// 読めなければ警告を出してDefaultsを返す
func Load(path string) domain.Weights {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using-default-weights")
		return Defaults()
	}
	defer f.Close()

	w, err := Read(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using-default-weights")
		return Defaults()
	}
	if unknown := w.Unknown(); len(unknown) > 0 {
		log.Warn().Interface("names", unknown).Str("path", path).Msg("ignoring-unknown-weights")
	}
	return w
}

// Write は重みを名前順に書き出す
func Write(out io.Writer, w domain.Weights) error {
	names := maps.Keys(w)
	slices.Sort(names)

	bw := bufio.NewWriter(out)
	for _, name := range names {
		fmt.Fprintf(bw, "%s %s\n", name, strconv.FormatFloat(w[name], 'g', -1, 64))
	}
	return bw.Flush()
}

// Save は重みをファイルに書き出す
func Save(path string, w domain.Weights) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, w); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
