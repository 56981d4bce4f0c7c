package array

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Format prints a slice the way numpy does: floats keep a trailing dot,
// booleans are capitalised, elements are space separated.
func Format[T Element](xs []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range xs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatElem(any(v)))
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatElem switches on the kind so named types print like their
// underlying type.
func formatElem(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return "True"
		}
		return "False"
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float(), rv.Type().Bits())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', 8, bits)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + "."
}
