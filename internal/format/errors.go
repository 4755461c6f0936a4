package format

import "errors"

var (
	// ErrInvalidAmount 金额不是非负整数字符串
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrProgressUndefined 目标金额为0, 进度无意义
	ErrProgressUndefined = errors.New("progress undefined: goal is zero")
	// ErrInvalidTimestamp 时间戳超出支持范围
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Fallback 格式化失败时展示的占位符
const Fallback = "—"
