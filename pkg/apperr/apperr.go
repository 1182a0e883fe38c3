package apperr

import "errors"

// サービス層のエラー分類。コントローラー側で HTTP ステータスに変換する。
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)
