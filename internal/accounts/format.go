package accounts

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━"

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders d with thousands separators and two decimals, e.g. $1,250.50
func FormatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// FormatBalance renders a lookup result for the customer
func FormatBalance(info *BalanceInfo) string {
	if info == nil {
		return ""
	}
	if !info.Found || info.Balance == nil {
		return info.Message
	}

	var b strings.Builder
	b.WriteString("Información de Cuenta\n")
	b.WriteString(rule + "\n")
	b.WriteString("Titular: " + info.Name + "\n")
	b.WriteString("Cédula: " + info.Cedula + "\n")
	b.WriteString("Balance: " + FormatMoney(*info.Balance) + "\n")
	b.WriteString(rule)
	return b.String()
}
