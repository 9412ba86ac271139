package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var viPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND formata um valor com agrupamento vi-VN e sem casas decimais.
func FormatVND(v decimal.Decimal) string {
	return viPrinter.Sprintf("%d", v.Round(0).IntPart())
}
