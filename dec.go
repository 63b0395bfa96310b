package iso8601

/*
dec.go implements the strict ISO-8601 timestamp decoder.
*/

/*
decodeState enumerates the fields of the fixed grammar

	YYYY-MM-DDTHH:mm:ss.sss(Z|±H+:M+)

in the order a single left-to-right scan visits them.
*/
type decodeState int

const (
	stateYear decodeState = iota
	stateMonth
	stateDay
	stateHour
	stateMinute
	stateSecond
	stateMillis
	stateOffset
	stateDone
)

/*
cursor tracks a single left-to-right scan over the input. There is no
backtracking; the only alternative in the grammar is the final 'Z'
versus signed-offset choice, which is resolved by one byte of
lookahead.
*/
type cursor struct {
	in  string
	pos int
}

func (r *cursor) eof() bool { return r.pos >= len(r.in) }

// literal consumes the single expected byte b.
func (r *cursor) literal(b byte) (err error) {
	if r.eof() || r.in[r.pos] != b {
		err = errorSyntax(r.pos, `'`+string(b)+`'`)
		return
	}
	r.pos++
	return
}

// fixedDigits consumes exactly n ASCII digits; any non-digit or
// premature end of input fails at the offending position.
func (r *cursor) fixedDigits(n int, what string) (v int, err error) {
	for k := 0; k < n; k++ {
		if r.eof() || !isDigit(r.in[r.pos]) {
			return 0, errorSyntax(r.pos, itoa(n)+`-digit `+what)
		}
		v = v*10 + int(r.in[r.pos]-'0')
		r.pos++
	}
	return
}

// digits consumes a variable-length, unpadded run of one or more
// ASCII digits.
func (r *cursor) digits(what string) (v int, err error) {
	if r.eof() || !isDigit(r.in[r.pos]) {
		return 0, errorSyntax(r.pos, what)
	}
	for !r.eof() && isDigit(r.in[r.pos]) {
		v = v*10 + int(r.in[r.pos]-'0')
		r.pos++
	}
	return
}

// offset consumes the trailing offset clause, returning signed
// minutes: literal 'Z' yields zero, otherwise a sign byte followed by
// unpadded hour and minute integers separated by ':'.
func (r *cursor) offset() (minutes int, err error) {
	if r.eof() {
		return 0, errorSyntax(r.pos, `'Z' or signed offset`)
	}

	switch r.in[r.pos] {
	case 'Z':
		r.pos++
		return 0, nil
	case '+', '-':
		sign := 1
		if r.in[r.pos] == '-' {
			sign = -1
		}
		r.pos++

		var hh, mm int
		if hh, err = r.digits(`offset hours`); err == nil {
			if err = r.literal(':'); err == nil {
				mm, err = r.digits(`offset minutes`)
			}
		}
		if err == nil {
			minutes = sign * (hh*60 + mm)
		}
		return minutes, err
	}

	return 0, errorSyntax(r.pos, `'Z' or signed offset`)
}

/*
Decode returns an instance of [Timestamp] alongside an error following
an attempt to parse s against the strict grammar

	YYYY-MM-DDTHH:mm:ss.sss(Z|±H+:M+)

All dated fields are fixed-width digit runs; the signed offset form
carries unpadded hour and minute integers. The date triple is
validated against actual month lengths and leap-year rules before any
time-of-day token is read. A stated offset is subtracted from the
parsed minutes, normalizing local time to UTC; the resulting Timestamp
retains no offset memory.

Any invalid input yields exactly one terminal error -- a [SyntaxError],
[DayError] or [MonthError] -- describing the first failure encountered.
*/
func Decode(s string) (Timestamp, error) {
	var (
		cur = cursor{in: s}

		year, month, day             int
		hour, minute, second, millis int
		offsetMinutes                int
		dateMs                       int64
		err                          error
	)

	for state := stateYear; state != stateDone && err == nil; {
		switch state {
		case stateYear:
			year, err = cur.fixedDigits(4, `year`)
			state = stateMonth
		case stateMonth:
			if err = cur.literal('-'); err == nil {
				month, err = cur.fixedDigits(2, `month`)
			}
			state = stateDay
		case stateDay:
			if err = cur.literal('-'); err == nil {
				day, err = cur.fixedDigits(2, `day`)
			}
			if err == nil {
				// the date must be sound before the scan proceeds
				// to time-of-day tokens
				dateMs, err = dateToMillis(year, month, day)
			}
			state = stateHour
		case stateHour:
			if err = cur.literal('T'); err == nil {
				hour, err = cur.fixedDigits(2, `hour`)
			}
			state = stateMinute
		case stateMinute:
			if err = cur.literal(':'); err == nil {
				minute, err = cur.fixedDigits(2, `minute`)
			}
			state = stateSecond
		case stateSecond:
			if err = cur.literal(':'); err == nil {
				second, err = cur.fixedDigits(2, `second`)
			}
			state = stateMillis
		case stateMillis:
			if err = cur.literal('.'); err == nil {
				millis, err = cur.fixedDigits(3, `millisecond`)
			}
			state = stateOffset
		case stateOffset:
			offsetMinutes, err = cur.offset()
			state = stateDone
		}
	}

	if err == nil && !cur.eof() {
		err = errorSyntax(cur.pos, `end of input`)
	}
	if err != nil {
		return 0, err
	}

	ms := dateMs +
		int64(hour)*msPerHour +
		int64(minute-offsetMinutes)*msPerMinute +
		int64(second)*msPerSecond +
		int64(millis)

	return Timestamp(ms), nil
}
