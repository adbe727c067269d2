// 指示: miu200521358
package io_rig

import (
	"errors"
	"fmt"
)

var (
	// ErrExtInvalid は未対応拡張子のエラーを表す。
	ErrExtInvalid = errors.New("未対応の拡張子です")
	// ErrFileNotFound はファイル未検出のエラーを表す。
	ErrFileNotFound = errors.New("ファイルが見つかりません")
	// ErrParseFailed は解析失敗のエラーを表す。
	ErrParseFailed = errors.New("解析に失敗しました")
)

// newIoExtInvalid は未対応拡張子エラーを生成する。
func newIoExtInvalid(path string) error {
	return fmt.Errorf("%w: %s", ErrExtInvalid, path)
}

// newIoFileNotFound はファイル未検出エラーを生成する。
func newIoFileNotFound(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
}

// newIoParseFailed は解析失敗エラーを生成する。err が nil の場合は原因を付けない。
func newIoParseFailed(format string, err error, params ...any) error {
	message := fmt.Sprintf(format, params...)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrParseFailed, message)
	}
	return fmt.Errorf("%w: %s: %w", ErrParseFailed, message, err)
}
