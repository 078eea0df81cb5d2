package domain

import "errors"

var (
	// ErrInvalidStartingPosition は配置前のピースが既に衝突している
	ErrInvalidStartingPosition = errors.New("block started in an invalid position")
	// ErrIllegalMove は手順の途中で衝突する姿勢に入った
	ErrIllegalMove = errors.New("block reached an invalid position")
	// ErrPreviewExhausted は操作するピースが残っていない
	ErrPreviewExhausted = errors.New("no active block")
	// ErrBrokenPath は着地姿勢から出現姿勢まで親を辿れない
	ErrBrokenPath = errors.New("could not find path")
)
