package format

import (
	"fmt"
	"time"
)

const (
	deadlineLayout = "Jan 2, 2006"
	// MaxTimestamp 9999-12-31T23:59:59Z
	MaxTimestamp int64 = 253402300799
)

// FormatDeadline 将 Unix 秒级时间戳格式化为 "MMM D, YYYY" (UTC)
func FormatDeadline(unix int64) (string, error) {
	if unix < 0 || unix > MaxTimestamp {
		return "", fmt.Errorf("%w: %d", ErrInvalidTimestamp, unix)
	}
	return time.Unix(unix, 0).UTC().Format(deadlineLayout), nil
}
