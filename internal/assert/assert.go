package assert

import (
	"fmt"
	"reflect"
)

// That panics with the formatted message if cond is false. The check only
// runs when built with the soadebug tag.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

func IsStructType(t reflect.Type) {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("expected struct type, got %s", t))
	}
}
