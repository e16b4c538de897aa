package utils

import (
	"fmt"
)

const (
	MilesPerKilometer = 0.621371
	FeetPerMile       = 5280.0
)

// PresentableDistance renders a distance in kilometers for people used to
// miles. Very short walks are reported in feet.
func PresentableDistance(km float64) string {
	mi := km * MilesPerKilometer
	if mi < 0.1 {
		ft := mi * FeetPerMile
		return fmt.Sprintf("%.0f feet", ft)
	}
	return fmt.Sprintf("%.2f mile%s", mi, ternary(mi == 1, "", "s"))
}

// Plural picks the singular or plural form for n
func Plural(n int, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, ternary(n == 1, singular, plural))
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
