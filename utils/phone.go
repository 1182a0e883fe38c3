package utils

import (
	"regexp"
	"strings"
)

var numericOnlyRegex = regexp.MustCompile(`^\d+$`)

// NormalizeNumber はハイフン・空白を除去した番号文字列を返す
func NormalizeNumber(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "　", "")
	return strings.TrimSpace(s)
}

// IsNumericOnly は数字のみの文字列かを判定する
func IsNumericOnly(s string) bool {
	return numericOnlyRegex.MatchString(s)
}

// FormatNumber は10桁/11桁の番号をハイフン区切りに整形する。
// それ以外の桁数はそのまま返す。
func FormatNumber(number string) string {
	if strings.Contains(number, "-") {
		return number
	}
	switch len(number) {
	case 10:
		return number[:2] + "-" + number[2:6] + "-" + number[6:]
	case 11:
		return number[:3] + "-" + number[3:7] + "-" + number[7:]
	}
	return number
}
