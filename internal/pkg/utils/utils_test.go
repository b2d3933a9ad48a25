//go:build unit

package utils

import "testing"

func TestFormatMoney_Closure(t *testing.T) {
	formatRequest := func(amount float64, currency, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FormatMoney(amount, currency)
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("usd_with_thousands", formatRequest(2000.5, "USD", "$2,000.50"))
	t.Run("small_amount", formatRequest(65, "USD", "$65.00"))
	t.Run("millions", formatRequest(1234567.89, "USD", "$1,234,567.89"))
	t.Run("euro_symbol", formatRequest(99.99, "EUR", "€99.99"))
	t.Run("unknown_currency_code_prefix", formatRequest(10, "JPY", "JPY 10.00"))
	t.Run("zero", formatRequest(0, "USD", "$0.00"))
}

func TestSlugify_Closure(t *testing.T) {
	slugRequest := func(name, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := Slugify(name)
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("spaces_to_underscores", slugRequest("Los Angeles", "los_angeles"))
	t.Run("collapses_extra_whitespace", slugRequest("  New   York  ", "new_york"))
	t.Run("single_word", slugRequest("Paris", "paris"))
}
