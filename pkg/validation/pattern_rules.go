package validation

import "regexp"

var (
	// Alphanumeric characters only
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// Digit characters only
	numericRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Match validates the input against a pre-compiled regular expression.
func Match(re *regexp.Regexp, message ...string) Rule {
	if re == nil {
		panic(ErrNilCheck)
	}
	return Rule{
		Check:   re.MatchString,
		Message: messageOr(message, "invalid format"),
	}
}

// MatchString compiles expr and validates the input against it.
// It panics on a malformed expression: patterns are part of program setup,
// so a bad one is a defect, not a runtime condition.
func MatchString(expr string, message ...string) Rule {
	return Match(regexp.MustCompile(expr), message...)
}

// Numeric validates that the input consists of digits only.
func Numeric(message ...string) Rule {
	return Rule{
		Check:   numericRegex.MatchString,
		Message: messageOr(message, "must contain only digits"),
	}
}

// Alphanumeric validates that the input consists of letters and digits only.
func Alphanumeric(message ...string) Rule {
	return Rule{
		Check:   alphanumericRegex.MatchString,
		Message: messageOr(message, "must contain only letters and digits"),
	}
}
