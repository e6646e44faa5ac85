package mirror

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TinybarsPerHbar 1 ℏ = 10^8 tinybar
const TinybarsPerHbar = 100_000_000

// FormatTinybarAsHbar 按 en-US 千分位格式化
func FormatTinybarAsHbar(tinybars int64) string {
	return FormatTinybarAsHbarIn(language.AmericanEnglish, tinybars)
}

// TinybarToHbar 用于指标等需要数值的场景, 会损失精度
func TinybarToHbar(tinybars int64) float64 {
	return decimal.New(tinybars, -8).InexactFloat64()
}

// FormatTinybarAsHbarIn tinybar 除以 10^8, 整数部分按 locale 分组, 小数部分原样拼回
func FormatTinybarAsHbarIn(tag language.Tag, tinybars int64) string {
	hbar := decimal.New(tinybars, -8).String()

	negative := strings.HasPrefix(hbar, "-")
	hbar = strings.TrimPrefix(hbar, "-")

	intPart, fracPart, hasFrac := strings.Cut(hbar, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// decimal 输出的整数部分一定可解析, 这里只是兜底
		return hbar
	}

	formatted := message.NewPrinter(tag).Sprintf("%d", n)
	if hasFrac {
		formatted += "." + fracPart
	}
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}
