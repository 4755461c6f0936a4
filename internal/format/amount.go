package format

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultUnitDecimals 一个展示单位 = 10^14 基础单位
	DefaultUnitDecimals = 14
	// internalPrecision 缩放后截断保留的小数位
	internalPrecision = 4
	// FractionDigits 展示的小数位
	FractionDigits = 3
)

// ParseBaseUnits 将十进制字符串解析为非负大整数
func ParseBaseUnits(amount string) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return n, nil
}

// Converter 金额格式化器, 按语言环境输出千分位
type Converter struct {
	tag      language.Tag
	decimals int32
	symbols  numberSymbols
}

// numberSymbols 语言环境的分组符号和小数点
type numberSymbols struct {
	group   string
	decimal string
	// minGrouping 整数部分至少多少位才分组, 例如 es 为 5
	minGrouping int
}

var defaultSymbols = numberSymbols{group: ",", decimal: ".", minGrouping: 4}

// symbolsFor 从 x/text 的格式化结果中提取分组符号和小数点
func symbolsFor(p *message.Printer) numberSymbols {
	s := p.Sprintf("%.1f", 12345.5)
	if !strings.HasPrefix(s, "12") || !strings.HasSuffix(s, "5") {
		return defaultSymbols
	}
	i := strings.Index(s[2:], "345")
	if i < 0 {
		return defaultSymbols
	}
	symbols := numberSymbols{
		group:       s[2 : 2+i],
		decimal:     s[2+i+3 : len(s)-1],
		minGrouping: 4,
	}
	if symbols.decimal == "" {
		return defaultSymbols
	}
	if symbols.group != "" && !strings.Contains(p.Sprintf("%.1f", 1234.5), symbols.group) {
		symbols.minGrouping = 5
	}
	return symbols
}

// render 按语言环境输出定点小数字符串, 例如 "1234.500"
func (s numberSymbols) render(fixed string) string {
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if s.group == "" || len(intPart) < s.minGrouping {
		b.WriteString(intPart)
	} else {
		head := len(intPart) % 3
		if head == 0 {
			head = 3
		}
		b.WriteString(intPart[:head])
		for i := head; i < len(intPart); i += 3 {
			b.WriteString(s.group)
			b.WriteString(intPart[i : i+3])
		}
	}
	if fracPart != "" {
		b.WriteString(s.decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}

// NewConverter 创建指定语言环境的金额格式化器, 使用默认的 10^14 缩放
func NewConverter(tag language.Tag) *Converter {
	return NewConverterWithDecimals(tag, DefaultUnitDecimals)
}

// NewConverterWithDecimals 创建自定义缩放位数的金额格式化器 (例如 wei 使用 18)
func NewConverterWithDecimals(tag language.Tag, decimals int) *Converter {
	if decimals < 0 {
		decimals = DefaultUnitDecimals
	}
	return &Converter{
		tag:      tag,
		decimals: int32(decimals),
		symbols:  symbolsFor(message.NewPrinter(tag)),
	}
}

// Tag 返回格式化器的语言环境
func (c *Converter) Tag() language.Tag {
	return c.tag
}

// Format 将基础单位金额字符串转换为 3 位小数的展示字符串
func (c *Converter) Format(amount string) (string, error) {
	n, err := ParseBaseUnits(amount)
	if err != nil {
		return "", err
	}
	return c.FormatInt(n), nil
}

// FormatInt 格式化已解析的基础单位金额.
// 先按整数截断到 4 位小数, 再四舍五入到 3 位, 全程使用精确小数.
func (c *Converter) FormatInt(n *big.Int) string {
	d := decimal.NewFromBigInt(n, -c.decimals).
		Truncate(internalPrecision).
		Round(FractionDigits)
	return c.symbols.render(d.StringFixed(FractionDigits))
}
