package view

import "fmt"

// FormatAmount renders a monetary amount with its currency symbol.
// E.g. ("USD", 500) -> "$500.00"
func FormatAmount(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currencySymbol(currency), amount)
}

// FormatOptionalAmount renders a possibly-absent amount; absent stays "—".
func FormatOptionalAmount(currency string, amount *float64) string {
	if amount == nil {
		return "—"
	}
	return FormatAmount(currency, *amount)
}

func currencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	default:
		return code + " "
	}
}
