package report

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
)

var byteUnits = []string{"B", "KB", "MB", "GB"}

// HumanBytes renders n with the largest unit in B/KB/MB/GB that keeps the
// scaled value at or above 1. Scaled values carry two decimals and are
// followed by the exact count, e.g. "1.00 KB (1,024 B)".
func HumanBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s (%s B)", v, byteUnits[unit], groupDigits(n))
}

func groupDigits(n uint64) string {
	if n <= math.MaxInt64 {
		return humanize.Comma(int64(n))
	}
	return humanize.BigComma(new(big.Int).SetUint64(n))
}
