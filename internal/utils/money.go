package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNaira renders an amount as whole naira with thousand separators,
// e.g. 1250000 -> "₦1,250,000".
func FormatNaira(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₦%s", sign, formatThousand(int64(math.Round(amount))))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
