package iso8601

/*
constr.go contains constraint and constraint group components which
serve to constrain Timestamp values accepted by constructors.
*/

import (
	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

// PropertyConstraint returns a Constraint that applies a user-defined check function.
// That function should return nil if the property is satisfied or an error otherwise.
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = mkerr(`value is not in the allowed range`)
		}
		return
	}
}

/*
TimestampRangeConstraint returns an instance of [Constraint] that checks
whether a [Timestamp] falls within the closed interval [min, max].
*/
func TimestampRangeConstraint(min, max Timestamp) Constraint[Timestamp] {
	return func(val Timestamp) (err error) {
		if val.Lt(min) || max.Lt(val) {
			err = mkerr(`timestamp ` + val.String() +
				` is not in allowed range [` + min.String() +
				`, ` + max.String() + `]`)
		}
		return
	}
}
