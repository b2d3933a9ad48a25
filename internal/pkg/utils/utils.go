package utils

import (
	"fmt"
	"strconv"
	"strings"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
}

// FormatMoney formats an amount with its currency symbol and thousands
// separators. Example: 2000.5, "USD" -> "$2,000.50"
func FormatMoney(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)

	str := strconv.FormatInt(whole, 10)

	var result []byte
	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	formatted := fmt.Sprintf("%s%s.%02d", symbol, string(result), cents)
	if negative {
		return symbol + "-" + strings.TrimPrefix(formatted, symbol)
	}
	return formatted
}

// Slugify lowercases a name and replaces whitespace for use in file names and
// cache keys. Example: "Los Angeles" -> "los_angeles"
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}
