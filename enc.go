package iso8601

/*
enc.go implements the ISO-8601 timestamp encoder.
*/

import "time"

/*
Encode renders ts in the canonical form

	YYYY-MM-DDTHH:mm:ss.sssZ

always in UTC; no offset is ever emitted. Encoding is total: every
Timestamp value renders without error.
*/
func Encode(ts Timestamp) string { return formatTimestamp(ts) }

// zero-alloc formatter; output is byte-for-byte identical to
// t.Format("2006-01-02T15:04:05.000Z") for years 0000 through 9999.
func formatTimestamp(ts Timestamp) string {
	t := time.UnixMilli(int64(ts)).UTC()

	var b [24]byte
	put2 := func(i, v int) {
		b[i] = byte('0' + v/10)
		b[i+1] = byte('0' + v%10)
	}

	year := t.Year()
	b[0] = byte('0' + (year/1000)%10)
	b[1] = byte('0' + (year/100)%10)
	b[2] = byte('0' + (year/10)%10)
	b[3] = byte('0' + year%10)
	b[4] = '-'
	put2(5, int(t.Month()))
	b[7] = '-'
	put2(8, t.Day())
	b[10] = 'T'
	put2(11, t.Hour())
	b[13] = ':'
	put2(14, t.Minute())
	b[16] = ':'
	put2(17, t.Second())
	b[19] = '.'

	ms := t.Nanosecond() / 1_000_000
	b[20] = byte('0' + ms/100)
	put2(21, ms%100)
	b[23] = 'Z'

	return string(b[:])
}
