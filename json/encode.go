package json

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnsupportedType is reported when a Value carries a Kind outside the
// seven recognized variants.
var ErrUnsupportedType = errors.New("json: unsupported value type")

// Format encodes v as compact JSON text: no inserted whitespace, no trailing
// commas. Object keys are emitted in sorted order so output is deterministic.
//
// Strings are emitted verbatim between double quotes, without escaping.
// This mirrors the decoder, which never decodes escape sequences; the pair
// stays mutually consistent for the inputs each actually supports.
func Format(v Value) (string, error) {
	var b strings.Builder
	if err := format(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func format(b *strings.Builder, v Value) error {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case KindString:
		b.WriteByte('"')
		b.WriteString(v.Str)
		b.WriteByte('"')
	case KindArray:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := format(b, item); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		keys := make([]string, 0, len(v.Fields))
		for key := range v.Fields {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for i, key := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(key)
			b.WriteString(`":`)
			if err := format(b, v.Fields[key]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("%w: kind %d", ErrUnsupportedType, v.Kind)
	}
	return nil
}
