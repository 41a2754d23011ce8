package format

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/moellerknudsen/fluentassertions/fluent/internal/nilcheck"
)

// maxLength caps rendered values to keep failure messages readable.
const maxLength = 200

var spewConfig = &spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Value renders v for inclusion in a failure message.
//
// Rendering rules:
//   - nil values (including typed nils) render as "<nil>"
//   - strings are quoted
//   - slices and arrays render as "[e1, e2, e3]" with elements rendered
//     recursively
//   - maps render as "map[k1: v1, k2: v2]" sorted by key
//   - fmt.Stringer and error values render via String()/Error()
//   - structs and pointers render as a compact go-spew dump
//
// Renderings longer than maxLength are truncated with a marker noting how
// many characters were dropped.
func Value(v any) string {
	return truncate(render(v))
}

func render(v any) string {
	if nilcheck.Absent(v) {
		return "<nil>"
	}

	switch typed := v.(type) {
	case string:
		return strconv.Quote(typed)
	case error:
		return typed.Error()
	case fmt.Stringer:
		return typed.String()
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Slice, reflect.Array:
		return renderSequence(rv)
	case reflect.Map:
		return renderMap(rv)
	case reflect.Struct, reflect.Pointer:
		return strings.TrimSpace(spewConfig.Sprintf("%#v", v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func renderSequence(rv reflect.Value) string {
	var sb strings.Builder

	sb.WriteString("[")

	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(render(rv.Index(i).Interface()))
	}

	sb.WriteString("]")

	return sb.String()
}

func renderMap(rv reflect.Value) string {
	entries := make([]string, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, render(iter.Key().Interface())+": "+render(iter.Value().Interface()))
	}

	sort.Strings(entries)

	return "map[" + strings.Join(entries, ", ") + "]"
}

func truncate(s string) string {
	if len(s) <= maxLength {
		return s
	}

	return s[:maxLength] + "... (truncated " + strconv.Itoa(len(s)-maxLength) + " chars)"
}
