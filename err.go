package iso8601

/*
err.go contains error types and constructors used frequently
throughout this package.
*/

/*
types which implement the error interface. Each decode failure is
exactly one of these; encoding never fails.
*/
type (
	// SyntaxError describes a literal, delimiter or digit run which
	// did not match the expected token at the recorded position.
	SyntaxError struct {
		Pos      int
		Expected string
	}

	// DayError describes a calendar day value of zero, or one which
	// exceeds the maximum for its month and (leap-adjusted) year.
	DayError struct {
		Day int
	}

	// MonthError describes a month value outside 1 through 12.
	MonthError struct {
		Month int
	}
)

func (r SyntaxError) Error() string {
	return `SYNTAX ERROR: expected ` + r.Expected +
		` at position ` + itoa(r.Pos)
}

func (r DayError) Error() string {
	return `CALENDAR ERROR: invalid day ` + itoa(r.Day)
}

func (r MonthError) Error() string {
	return `CALENDAR ERROR: invalid month ` + itoa(r.Month)
}

func errorSyntax(pos int, expected string) error {
	return SyntaxError{Pos: pos, Expected: expected}
}

func errorInvalidDay(day int) error { return DayError{Day: day} }

func errorInvalidMonth(month int) error { return MonthError{Month: month} }

func errorBadTypeForConstructor(x any) (err error) {
	var inName string = "<nil>" // sensible default
	if x != nil {
		inName = refTypeOf(x).String()
	}
	return mkerr(`Invalid input type for Timestamp constructor: ` + inName)
}
