package iso8601

/*
ts.go implements the Timestamp millisecond value type and its
constructor.
*/

import "time"

const timestampLayout = "2006-01-02T15:04:05.000Z"

/*
Timestamp is an opaque signed count of milliseconds elapsed since
1970-01-01T00:00:00.000Z. Values may be negative (pre-epoch).
Timestamp is an immutable value type with no identity beyond its
numeric value, and is safe for unguarded concurrent use.
*/
type Timestamp int64

/*
NewTimestamp returns an instance of [Timestamp] alongside an error
following an attempt to marshal x.

In addition to string and []byte (both decoded per [Decode]), this
function accepts int64 (milliseconds since the epoch), [time.Time]
and Timestamp input values.
*/
func NewTimestamp(x any, constraints ...Constraint[Timestamp]) (Timestamp, error) {
	var ts Timestamp
	var err error

	switch tv := x.(type) {
	case string:
		ts, err = Decode(tv)
	case []byte:
		ts, err = Decode(string(tv))
	case Timestamp:
		ts = tv
	case int64:
		ts = Timestamp(tv)
	case time.Time:
		ts = Timestamp(tv.UnixMilli())
	default:
		err = errorBadTypeForConstructor(x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Timestamp] = constraints
		err = group.Constrain(ts)
	}

	if err != nil {
		ts = 0
	}

	return ts, err
}

/*
String returns the string representation of the receiver instance.
*/
func (r Timestamp) String() string { return formatTimestamp(r) }

/*
Layout returns the string literal "2006-01-02T15:04:05.000Z".
*/
func (r Timestamp) Layout() string { return timestampLayout }

/*
Cast returns the receiver instance cast as an instance of [time.Time]
in UTC.
*/
func (r Timestamp) Cast() time.Time { return time.UnixMilli(int64(r)).UTC() }

/*
Millis returns the raw millisecond count of the receiver instance.
*/
func (r Timestamp) Millis() int64 { return int64(r) }

/*
Eq returns true if the receiver and other describe the same instant.
*/
func (r Timestamp) Eq(other Timestamp) bool { return r == other }

/*
Lt returns true if the receiver describes an instant strictly earlier
than other.
*/
func (r Timestamp) Lt(other Timestamp) bool { return r < other }

/*
MarshalText returns the [Encode]d form of the receiver instance. It
never returns an error, and exists to satisfy [encoding.TextMarshaler]
so that Timestamp composes with encoding/json and friends.
*/
func (r Timestamp) MarshalText() ([]byte, error) {
	return []byte(formatTimestamp(r)), nil
}

/*
UnmarshalText decodes b per [Decode] into the receiver instance,
satisfying [encoding.TextUnmarshaler].
*/
func (r *Timestamp) UnmarshalText(b []byte) error {
	ts, err := Decode(string(b))
	if err == nil {
		*r = ts
	}
	return err
}
