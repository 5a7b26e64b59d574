package util

import (
	"time"
)

// MonthKey formats t as "2006-01".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
