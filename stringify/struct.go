package stringify

import (
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the number of spaces used to indent nested fields.
const IndentationSize = 4

// Struct renders a named set of fields in a multi-line, indented layout that
// is used for the debug representations of the types in this library.
func Struct(name string, fields ...*StructField) string {
	builder := strings.Builder{}
	builder.WriteString(name + " {\n")

	for _, field := range fields {
		builder.WriteString(text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize)))
	}

	builder.WriteString("}")

	return builder.String()
}
