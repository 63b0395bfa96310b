package iso8601

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func ExampleNewTimestamp_withConstraint() {
	deadline, _ := NewTimestamp(`2014-12-31T08:04:55.000Z`)
	deadlineConstraint := PropertyConstraint(func(o Timestamp) (err error) {
		if deadline.Lt(o) {
			err = fmt.Errorf("Constraint violation: you're late!")
		}
		return
	})

	_, err := NewTimestamp(`2015-04-19T15:43:08.000Z`, deadlineConstraint)
	fmt.Println(err)
	// Output: Constraint violation: you're late!
}

func ExampleTimestamp_String() {
	fmt.Println(Timestamp(1451606400000))
	// Output: 2016-01-01T00:00:00.000Z
}

func TestNewTimestamp_validInputs(t *testing.T) {
	for _, in := range []any{
		`2016-01-01T00:00:00.000Z`,         // string
		[]byte(`2016-01-01T00:00:00.000Z`), // []byte
		int64(1451606400000),               // raw milliseconds
		time.UnixMilli(1451606400000),      // time.Time
		Timestamp(1451606400000),           // Timestamp
	} {
		ts, err := NewTimestamp(in)
		if err != nil {
			t.Fatalf("%s failed: NewTimestamp(%#v): %v", t.Name(), in, err)
		}
		if ts.Millis() != 1451606400000 {
			t.Fatalf("%s failed: NewTimestamp(%#v) = %d, want 1451606400000",
				t.Name(), in, ts.Millis())
		}
	}
}

func TestNewTimestamp_invalidInputs(t *testing.T) {
	for _, in := range []any{
		`2016-02-30T00:00:00.000Z`, // no such day
		``,
		12345,   // unsupported type (int, not int64)
		3.14,    // unsupported type
		nil,     // nil input
		struct{}{},
	} {
		if _, err := NewTimestamp(in); err == nil {
			t.Fatalf("%s failed: expected error for input %#v; got nil",
				t.Name(), in)
		}
	}
}

func TestNewTimestamp_constraintViolation(t *testing.T) {
	lo, _ := Decode(`2016-01-01T00:00:00.000Z`)
	hi, _ := Decode(`2016-12-31T23:59:59.999Z`)

	if _, err := NewTimestamp(`2016-06-15T12:00:00.000Z`,
		TimestampRangeConstraint(lo, hi)); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if _, err := NewTimestamp(`2017-01-01T00:00:00.000Z`,
		TimestampRangeConstraint(lo, hi)); err == nil {
		t.Fatalf("%s failed: expected range-constraint error, got nil", t.Name())
	}

	// lifted ordered-value constraint over the raw milliseconds
	millis := LiftConstraint(func(o Timestamp) int64 { return o.Millis() },
		RangeConstraint[int64](0, 1451606400000))
	if _, err := NewTimestamp(`2017-01-01T00:00:00.000Z`, millis); err == nil {
		t.Fatalf("%s failed: expected range-constraint error, got nil", t.Name())
	}
}

func TestTimestamp_comparisons(t *testing.T) {
	a, b := Timestamp(1), Timestamp(2)

	if !a.Lt(b) || b.Lt(a) || !a.Eq(a) || a.Eq(b) {
		t.Fatalf("%s failed: comparison misbehavior between %d and %d",
			t.Name(), a.Millis(), b.Millis())
	}
	if a.Cast().UnixMilli() != a.Millis() {
		t.Fatalf("%s failed: Cast lost milliseconds", t.Name())
	}
	if a.Layout() != timestampLayout {
		t.Fatalf("%s failed: unexpected layout %q", t.Name(), a.Layout())
	}
}

func TestTimestamp_jsonInterop(t *testing.T) {
	type record struct {
		When Timestamp `json:"when"`
	}

	in := record{When: 1451606400000}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("%s failed [json encoding]: %v", t.Name(), err)
	}
	if want := `{"when":"2016-01-01T00:00:00.000Z"}`; string(raw) != want {
		t.Fatalf("%s failed: got %s, want %s", t.Name(), raw, want)
	}

	var out record
	if err = json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("%s failed [json decoding]: %v", t.Name(), err)
	}
	if !out.When.Eq(in.When) {
		t.Fatalf("%s failed: round trip yielded %d, want %d",
			t.Name(), out.When.Millis(), in.When.Millis())
	}

	var bogus record
	if err = json.Unmarshal([]byte(`{"when":"2016-02-30T00:00:00.000Z"}`), &bogus); err == nil {
		t.Fatalf("%s failed: expected error for invalid calendar day, got nil", t.Name())
	}
}
