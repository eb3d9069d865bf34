package domain

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ZeroAmountInWords is the rendering of a zero amount.
const ZeroAmountInWords = "Không đồng"

const currencyWord = "đồng"

var (
	digitWords = [10]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}
	// scaleWords are the names of each group of three digits, least significant first.
	scaleWords = []string{"", "nghìn", "triệu", "tỷ", "nghìn tỷ", "triệu tỷ", "tỷ tỷ"}
)

// AmountInWords renders the integer part of amount in Vietnamese words followed by the
// currency name, e.g. 160 -> "Một trăm sáu mươi đồng". Fractions are truncated.
func AmountInWords(amount decimal.Decimal) string {
	whole := amount.Truncate(0)
	if whole.IsZero() {
		return ZeroAmountInWords
	}
	negative := whole.IsNegative()
	whole = whole.Abs()
	if whole.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		// beyond int64 there is no sensible reading; fall back to digits
		return whole.String() + " " + currencyWord
	}

	words := readNumber(whole.IntPart())
	if negative {
		words = append([]string{"âm"}, words...)
	}
	words = append(words, currencyWord)
	return capitalize(strings.Join(words, " "))
}

func readNumber(n int64) []string {
	var groups []int
	for n > 0 {
		groups = append(groups, int(n%1000))
		n /= 1000
	}

	var words []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		// groups after the leading one are read with their leading zeros
		full := i != len(groups)-1
		words = append(words, readTriple(groups[i], full)...)
		if scaleWords[i] != "" {
			words = append(words, scaleWords[i])
		}
	}
	return words
}

func readTriple(n int, full bool) []string {
	hundreds, tens, units := n/100, (n/10)%10, n%10
	var words []string

	if hundreds > 0 || full {
		words = append(words, digitWords[hundreds], "trăm")
	}

	switch {
	case tens == 0:
		if units != 0 && (hundreds > 0 || full) {
			words = append(words, "linh")
		}
	case tens == 1:
		words = append(words, "mười")
	default:
		words = append(words, digitWords[tens], "mươi")
	}

	if units != 0 {
		switch {
		case units == 1 && tens > 1:
			words = append(words, "mốt")
		case units == 4 && tens > 1:
			words = append(words, "tư")
		case units == 5 && tens > 0:
			words = append(words, "lăm")
		default:
			words = append(words, digitWords[units])
		}
	}
	return words
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
