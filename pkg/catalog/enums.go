package catalog

import "fmt"

// signedName renders a unit-step shift the way the bodies display it:
// explicit sign for non-zero, bare "0" for neutral.
func signedName(v int64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%+d", v)
}

// toneName renders a tens-encoded tonal shift. The encoding carries one
// extra digit so half steps stay representable: -35 displays as "-3.5".
func toneName(v int64) string {
	if v == 0 {
		return "0"
	}
	sign := "+"
	a := v
	if v < 0 {
		sign = "-"
		a = -v
	}
	if a%10 == 0 {
		return fmt.Sprintf("%s%d", sign, a/10)
	}
	return fmt.Sprintf("%s%d.%d", sign, a/10, a%10)
}

// registerSignedRange publishes a unit-step shift domain over [min, max].
func registerSignedRange(d Domain, min, max int64) {
	registerDomain(d, KindOffset)
	for v := min; v <= max; v++ {
		registerEnum(d, signedName(v), v)
	}
}

// registerToneRange publishes a tens-encoded tonal shift domain over
// [min, max] at the given encoding step.
func registerToneRange(d Domain, min, max, step int64) {
	registerDomain(d, KindOffset)
	for v := min; v <= max; v += step {
		registerEnum(d, toneName(v), v)
	}
}
