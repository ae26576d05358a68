package reflector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testStruct struct{}

func TestTypeInfoOf(t *testing.T) {
	ti := TypeInfoOf(testStruct{})
	require.Equal(t, "github.com/jvantuyl/extra-enum/internal/reflector.testStruct", ti.Name)
}

func TestTypeInfoOf_pointer_unwrapped(t *testing.T) {
	require.Equal(t, TypeInfoOf(testStruct{}), TypeInfoOf(&testStruct{}))
}

func TestTypeInfoFor(t *testing.T) {
	require.Equal(t, TypeInfoOf(testStruct{}), TypeInfoFor[testStruct]())
	require.Equal(t, TypeInfoOf(testStruct{}), TypeInfoFor[*testStruct]())
}

func TestTypeInfoForType_nil(t *testing.T) {
	require.Equal(t, TypeInfo{}, TypeInfoForType(nil))
}
