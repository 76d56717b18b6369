package discovery

import "errors"

var (
	// ErrInvalidOperation 会话已耗尽时调用 Advance。
	ErrInvalidOperation = errors.New("discovery: no room to advance, session is exhausted")
	// ErrInvalidDirection 方向不是 left/right。
	ErrInvalidDirection = errors.New("discovery: direction must be left or right")
)
