package common

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOf(t *testing.T) {
	names := []string{"a", "b", "a"}
	assert.Equal(t, 0, IndexOf(names, "a"))
	assert.Equal(t, 1, IndexOf(names, "b"))
	assert.Equal(t, -1, IndexOf(names, "c"))
}

func TestFirstDuplicate(t *testing.T) {
	assert.Equal(t, "", FirstDuplicate([]string{"a", "b"}))
	assert.Equal(t, "b", FirstDuplicate([]string{"a", "b", "c", "b", "a"}))
}

func TestKeyDiff(t *testing.T) {
	missing, unexpected := KeyDiff([]string{"x", "y", "z"}, map[string]any{"y": 1, "b": 2, "a": 3})
	assert.Equal(t, []string{"x", "z"}, missing)
	assert.Equal(t, []string{"a", "b"}, unexpected)

	missing, unexpected = KeyDiff([]string{"x"}, map[string]any{"x": nil})
	assert.Empty(t, missing)
	assert.Empty(t, unexpected)
}

func TestStructType(t *testing.T) {
	type s struct{ A int }

	typ, ok := StructType(s{})
	assert.True(t, ok)
	assert.Equal(t, "s", typ.Name())

	_, ok = StructType(&s{})
	assert.True(t, ok)

	_, ok = StructType(1)
	assert.False(t, ok)

	_, ok = StructType(nil)
	assert.False(t, ok)

	assert.True(t, IsStructPtr(&s{}))
	assert.False(t, IsStructPtr(s{}))
	assert.False(t, IsStructPtr(nil))
}

func TestFieldNames_TagOptions(t *testing.T) {
	type sample struct {
		Amount int    `field:"cents,omitempty"`
		Note   string `field:",omitempty"`
		Secret string `field:"-,omitempty"`
	}
	assert.Equal(t, []string{"cents", "note"}, FieldNames(reflect.TypeFor[sample]()))
}

func TestFieldNames(t *testing.T) {
	type sample struct {
		Name    string
		Age     int    `field:"years"`
		Skipped bool   `field:"-"`
		hidden  string
		URL     string
	}
	assert.Equal(t, []string{"name", "years", "url"}, FieldNames(reflect.TypeFor[sample]()))
}
