package iso8601

/*
cal.go implements proleptic-Gregorian calendar arithmetic -- namely
the leap-year predicate, leap-year counting over arbitrary ranges and
conversion of a (year, month, day) triple into epoch-relative
milliseconds.
*/

const (
	msPerSecond int64 = 1_000
	msPerMinute int64 = 60_000
	msPerHour   int64 = 3_600_000
	msPerDay    int64 = 86_400_000

	// 365-day basis; leap days are accounted for separately.
	msPerYear int64 = 31_536_000_000

	epochYear = 1970
)

/*
monthTable maps each month (index 0 = January) to its day count in a
common year and the cumulative number of days preceding it. February
gains a 29th day, and the cumulative counts from March onward gain one
day, when the year is a leap year.
*/
var monthTable = [12]struct {
	days int
	cum  int
}{
	{31, 0}, {28, 31}, {31, 59}, {30, 90},
	{31, 120}, {30, 151}, {31, 181}, {31, 212},
	{30, 243}, {31, 273}, {30, 304}, {31, 334},
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth assumes month has already been range-checked.
func daysInMonth(month, year int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthTable[month-1].days
}

func daysBeforeMonth(month, year int) int {
	cum := monthTable[month-1].cum
	if month > 2 && isLeapYear(year) {
		cum++
	}
	return cum
}

/*
leapYearsBetween returns the number of leap years falling strictly
between a and b. The count is order-independent; operands are swapped
as needed so that the smaller one serves as the lower bound.

Bounds within [1800, 9999] take a closed-form path based on counting
multiples of 4, 100 and 400 via integer division. Anything outside
that window falls back to a year-by-year scan; such ranges are rare
and correctness outweighs the O(range) cost there.
*/
func leapYearsBetween(a, b int) int {
	lower, higher := a, b
	if higher < lower {
		lower, higher = higher, lower
	}
	if lower == higher {
		return 0
	}

	if 1800 <= lower && higher <= 9999 {
		by4 := (higher-1)/4 - lower/4
		by100 := (higher-1)/100 - lower/100
		by400 := (higher-1)/400 - lower/400
		return by4 - by100 + by400
	}

	var count int
	for year := lower + 1; year < higher; year++ {
		if isLeapYear(year) {
			count++
		}
	}
	return count
}

/*
leapDaysSinceEpoch returns the signed number of leap days accumulated
across whole years between the epoch year and the start of year:
positive for post-epoch years, negative for pre-epoch years. A
pre-epoch leap year contributes its own leap day, since its February
29th lies between the converted date and the epoch.
*/
func leapDaysSinceEpoch(year int) int {
	switch {
	case year > epochYear:
		return leapYearsBetween(epochYear, year)
	case year < epochYear:
		return -leapYearsBetween(year-1, epochYear)
	}
	return 0
}

/*
dateToMillis validates a (year, month, day) triple against actual
month lengths and leap-year rules for year, returning the
epoch-relative millisecond offset of the start of that day. No
Timestamp is ever derived from a triple this function rejects.
*/
func dateToMillis(year, month, day int) (int64, error) {
	if day < 1 {
		return 0, errorInvalidDay(day)
	}
	if month < 1 || month > 12 {
		return 0, errorInvalidMonth(month)
	}
	if day > daysInMonth(month, year) {
		return 0, errorInvalidDay(day)
	}

	days := int64(daysBeforeMonth(month, year)) +
		int64(day-1) +
		int64(leapDaysSinceEpoch(year))

	return msPerYear*int64(year-epochYear) + msPerDay*days, nil
}
