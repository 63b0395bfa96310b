package iso8601

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"reflect"
	"strconv"
)

/*
official import aliases.
*/
var (
	mkerr     func(string) error     = errors.New
	itoa      func(int) string       = strconv.Itoa
	refTypeOf func(any) reflect.Type = reflect.TypeOf
)

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
