package lambdalog

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const placeholder = "{}"

// stackTracer is implemented by github.com/pkg/errors values.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// formatEntry assembles "[name] LEVEL  message" plus "\n<trace>" when err is non-nil.
func formatEntry(name string, level Level, template string, args []any, err error) string {
	buf := getBuf()
	defer putBuf(buf)

	buf.writeByte('[')
	buf.writeString(name)
	buf.writeString("] ")
	buf.writeString(level.String())
	buf.writeString("  ")
	appendMessage(buf, template, args)
	if err != nil {
		buf.writeByte('\n')
		appendTrace(buf, err)
	}
	return string(buf.b)
}

// appendMessage substitutes {} placeholders left to right. Excess placeholders
// pass through literally and excess arguments are ignored.
func appendMessage(buf *buffer, template string, args []any) {
	i, next := 0, 0
	for next < len(args) {
		j := strings.Index(template[i:], placeholder)
		if j < 0 {
			break
		}
		j += i
		if escaped(template, j) {
			if escaped(template, j-1) {
				// \\{} is a literal backslash followed by a substitution
				buf.writeString(template[i : j-1])
				appendArg(buf, args[next])
				next++
				i = j + len(placeholder)
				continue
			}
			buf.writeString(template[i : j-1])
			buf.writeByte('{')
			i = j + 1
			continue
		}
		buf.writeString(template[i:j])
		appendArg(buf, args[next])
		next++
		i = j + len(placeholder)
	}
	buf.writeString(template[i:])
}

func escaped(s string, at int) bool {
	return at > 0 && s[at-1] == '\\'
}

func appendArg(buf *buffer, v any) {
	switch vv := v.(type) {
	case nil:
		buf.writeString("null")
	case string:
		buf.writeString(vv)
	default:
		// fmt recovers panicking String and Error methods
		buf.b = fmt.Append(buf.b, vv)
	}
}

// appendTrace renders err with its stack when one is available.
func appendTrace(buf *buffer, err error) {
	if _, ok := err.(fmt.Formatter); ok {
		buf.b = fmt.Appendf(buf.b, "%+v", err)
		return
	}
	buf.b = fmt.Append(buf.b, err)
	var st stackTracer
	if errors.As(err, &st) {
		buf.b = fmt.Appendf(buf.b, "%+v", st.StackTrace())
	}
}

// splitError infers a trailing error argument. The inferred error is removed
// from the substitution arguments.
func splitError(args []any) ([]any, error) {
	if len(args) == 0 {
		return args, nil
	}
	if err, ok := args[len(args)-1].(error); ok && err != nil {
		return args[:len(args)-1], err
	}
	return args, nil
}
