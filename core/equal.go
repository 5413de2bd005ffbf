package core

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
)

// Field values are compared structurally, unexported fields included.
var equalOpts = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// separatorByte is a byte that cannot occur in valid UTF-8 sequences
var separatorByte = []byte{255}

var (
	hasherType = reflect.TypeFor[Hasher]()
	timeType   = reflect.TypeFor[time.Time]()
)

// Equal reports whether other was built by the same concrete class and holds
// pairwise equal values in declared order. Values are compared with cmp.Equal,
// so composite values compare recursively and types with an Equal method
// decide for themselves.
func (i *Instance) Equal(other *Instance) bool {
	if i == other {
		return true
	}
	if i == nil || other == nil || i.class != other.class || len(i.values) != len(other.values) {
		return false
	}
	for idx := range i.values {
		if !cmp.Equal(i.values[idx], other.values[idx], equalOpts) {
			return false
		}
	}
	return true
}

// HashCode returns a hash of the class identity and the field values in
// declared order. Instances that are Equal always have the same hash.
func (i *Instance) HashCode() uint64 {
	if i == nil {
		return 0
	}
	h := xxhash.New()
	_, _ = h.Write(i.class.id[:])
	for _, v := range i.values {
		hashValue(h, reflect.ValueOf(v), map[visit]struct{}{})
		_, _ = h.Write(separatorByte)
	}
	return h.Sum64()
}

// visit identifies a reference-carrying value on the current hashing path.
// Slices include their length since a prefix shares the backing pointer.
type visit struct {
	kind reflect.Kind
	ptr  uintptr
	len  int
}

// enter marks v as being hashed. It reports false when v is already on the
// path, in which case "<cycle>" has been written and the caller must not recurse.
func enter(h *xxhash.Digest, v reflect.Value, seen map[visit]struct{}) (visit, bool) {
	key := visit{kind: v.Kind(), ptr: v.Pointer()}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}
	if _, ok := seen[key]; ok {
		_, _ = h.WriteString("<cycle>")
		return key, false
	}
	seen[key] = struct{}{}
	return key, true
}

// hashValue mirrors the equality cmp.Equal applies under equalOpts. Where it
// cannot (types other than time.Time with their own Equal method but no
// Hasher, funcs, chans) it hashes only the type, which keeps equal values on
// equal hashes. Pointers, maps and slices already on the path hash as "<cycle>".
func hashValue(h *xxhash.Digest, v reflect.Value, seen map[visit]struct{}) {
	if !v.IsValid() {
		_, _ = h.WriteString("<nil>")
		return
	}
	t := v.Type()
	_, _ = h.WriteString(t.String())
	_, _ = h.Write(separatorByte)

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return
		}
	}

	if _, ok := t.MethodByName("Equal"); ok {
		switch {
		case t == timeType && v.CanInterface():
			// time.Time.Equal compares instants, so the zone is left out.
			at := v.Interface().(time.Time)
			writeUint(h, uint64(at.Unix()))
			writeUint(h, uint64(at.Nanosecond()))
		case t.Implements(hasherType) && v.CanInterface():
			writeUint(h, v.Interface().(Hasher).HashCode())
		}
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint(h, 1)
		} else {
			writeUint(h, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(h, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(h, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(h, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(h, real(c))
		writeFloat(h, imag(c))
	case reflect.String:
		_, _ = h.WriteString(v.String())
	case reflect.Slice:
		key, ok := enter(h, v, seen)
		if !ok {
			return
		}
		hashElems(h, v, seen)
		delete(seen, key)
	case reflect.Array:
		hashElems(h, v, seen)
	case reflect.Map:
		key, ok := enter(h, v, seen)
		if !ok {
			return
		}
		// Entries are summed so iteration order does not matter.
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			eh := xxhash.New()
			hashValue(eh, iter.Key(), seen)
			_, _ = eh.Write(separatorByte)
			hashValue(eh, iter.Value(), seen)
			sum += eh.Sum64()
		}
		writeUint(h, uint64(v.Len()))
		writeUint(h, sum)
		delete(seen, key)
	case reflect.Struct:
		for idx := range v.NumField() {
			hashValue(h, v.Field(idx), seen)
			_, _ = h.Write(separatorByte)
		}
	case reflect.Pointer:
		key, ok := enter(h, v, seen)
		if !ok {
			return
		}
		hashValue(h, v.Elem(), seen)
		delete(seen, key)
	case reflect.Interface:
		hashValue(h, v.Elem(), seen)
	}
}

func hashElems(h *xxhash.Digest, v reflect.Value, seen map[visit]struct{}) {
	writeUint(h, uint64(v.Len()))
	for idx := range v.Len() {
		hashValue(h, v.Index(idx), seen)
		_, _ = h.Write(separatorByte)
	}
}

func writeUint(h *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = h.Write(buf[:])
}

func writeFloat(h *xxhash.Digest, f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	writeUint(h, math.Float64bits(f))
}
