// Package reflector derives stable type names for messages, cached for
// repeated lookups on hot paths (metrics labels, log fields).
package reflector

import (
	"reflect"
	"sync"
)

// TypeInfo holds metadata about a reflected type.
type TypeInfo struct {
	Name string       // fully qualified: "pkg/path.TypeName"
	Type reflect.Type // the underlying reflect.Type
}

// The number of distinct message types in a program is small and bounded,
// so an unbounded cache is fine.
var cache sync.Map // reflect.Type -> TypeInfo

// TypeInfoOf returns TypeInfo for the dynamic type of x.
func TypeInfoOf(x any) TypeInfo {
	return TypeInfoForType(reflect.TypeOf(x))
}

// TypeInfoFor returns TypeInfo for type parameter T.
func TypeInfoFor[T any]() TypeInfo {
	return TypeInfoForType(reflect.TypeFor[T]())
}

// TypeInfoForType returns TypeInfo for t. Pointer types report their
// element type. Safe for concurrent use.
func TypeInfoForType(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{}
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if ti, ok := cache.Load(t); ok {
		return ti.(TypeInfo)
	}

	ti := TypeInfo{
		Name: t.PkgPath() + "." + t.Name(),
		Type: t,
	}
	cache.Store(t, ti)
	return ti
}
