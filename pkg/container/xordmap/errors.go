package xordmap

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey 表示 checked 插入遇到了已存在的键。
	// 用于 errors.Is 匹配；具体键通过 [DuplicateKeyError] 携带。
	ErrDuplicateKey = errors.New("xordmap: value is already present")

	// ErrMissingKey 表示 checked 删除遇到了不存在的键。
	// 用于 errors.Is 匹配；具体键通过 [MissingKeyError] 携带。
	ErrMissingKey = errors.New("xordmap: value is not present")
)

// DuplicateKeyError 由 [Map.AddNewChecked] 返回，携带冲突的键。
type DuplicateKeyError[K comparable] struct {
	Key K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("xordmap: value %v is already present", e.Key)
}

// Is 使 errors.Is(err, ErrDuplicateKey) 对任意键类型成立。
func (e *DuplicateKeyError[K]) Is(target error) bool {
	return target == ErrDuplicateKey
}

// MissingKeyError 由 [Map.RemoveChecked] 返回，携带缺失的键。
type MissingKeyError[K comparable] struct {
	Key K
}

func (e *MissingKeyError[K]) Error() string {
	return fmt.Sprintf("xordmap: value %v is not present", e.Key)
}

// Is 使 errors.Is(err, ErrMissingKey) 对任意键类型成立。
func (e *MissingKeyError[K]) Is(target error) bool {
	return target == ErrMissingKey
}
