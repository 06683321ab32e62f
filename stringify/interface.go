package stringify

import (
	"fmt"
	"strconv"
)

// Interface returns the string representation of a generic value. Types that
// implement fmt.Stringer render through their own String method.
func Interface(value interface{}) string {
	switch typeCastedValue := value.(type) {
	case bool:
		return strconv.FormatBool(typeCastedValue)
	case string:
		return "\"" + typeCastedValue + "\""
	case int:
		return strconv.Itoa(typeCastedValue)
	case int64:
		return strconv.FormatInt(typeCastedValue, 10)
	case uint64:
		return strconv.FormatUint(typeCastedValue, 10)
	case float32:
		return Float32(typeCastedValue)
	case float64:
		return Float64(typeCastedValue)
	case fmt.Stringer:
		return typeCastedValue.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
