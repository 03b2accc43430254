package statekit

import (
	"reflect"
	"runtime"
	"strings"
)

// anonymousFunctionDescription is the text used for compiler-generated
// function names, e.g. closures passed inline during configuration.
const anonymousFunctionDescription = "Function"

// functionDescription returns a human-readable name for a guard or resolver
// function, used in introspection output and diagram labels.
func functionDescription(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	name := runtime.FuncForPC(v.Pointer()).Name()
	if name == "" {
		return anonymousFunctionDescription
	}
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if strings.Contains(name, "func") {
		return anonymousFunctionDescription
	}
	return name
}
