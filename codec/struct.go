// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package codec provides Struct, the Go analogue of the reference
// implementation's #[derive(Bytes)] macro: a way to obtain a
// mem.Codec[T] for a plain fixed-layout aggregate without hand-writing
// Read/Write.
//
// The macro existed in the original because Rust cannot write a blanket
// trait impl for "any Copy + 'static type" (see the upstream issue cited
// in contrail/src/mem.rs). Go has no such restriction: a generic function
// is already monomorphized per concrete T, so Struct[T]() can simply be
// called at the instantiation site. There is no separate code-generation
// step, and therefore no way to instantiate it with a T that itself
// carries unresolved type parameters — the compiler enforces that for
// free, which is exactly what the macro's "reject generic parameters"
// check did by hand.
package codec

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/billyrieger/contrail-go/mem"
)

var cache sync.Map // reflect.Type -> error (nil entry means "checked ok")

// Struct returns a mem.Codec[T] that serializes T by copying its raw
// in-memory representation, the same way the reference derive macro's
// generated Read/Write did via transmute.
//
// T is normally a struct, but any fixed-layout type is accepted. T must
// have no pointers, slices, maps, strings, interfaces, or channels
// anywhere in its field tree — such fields have no
// process-stable byte representation, so copying their bytes and later
// reinterpreting them (as a trail snapshot restore does) would not
// round-trip safely. Struct panics if T fails this check. The check runs
// at most once per distinct T; the result is memoized.
//
// Callers are responsible for the same obligation the reference
// implementation places on its derive users: T must have no padding that
// could leak uninitialized bytes in a way that matters, which is
// automatically satisfied as long as every value ever written through
// this codec was itself fully initialized (Go zero-initializes all
// values, so this holds unconditionally in practice).
func Struct[T any]() mem.Codec[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// T is an interface type or otherwise has no static layout;
		// reflect.TypeOf(zero) is nil for e.g. T = any.
		panic(fmt.Sprintf("codec: cannot derive a byte codec for %T: no concrete static layout", zero))
	}
	checkLayout(t)
	return structCodec[T]{length: int(t.Size())}
}

func checkLayout(t reflect.Type) {
	if cached, ok := cache.Load(t); ok {
		if err, ok := cached.(error); ok && err != nil {
			panic(err.Error())
		}
		return
	}

	err := walkLayout(t, t.Name())
	cache.Store(t, err)
	if err != nil {
		panic(err.Error())
	}
}

func walkLayout(t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Array:
		return walkLayout(t.Elem(), path+"[]")
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if err := walkLayout(f.Type, path+"."+f.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("codec: field %s has kind %s, which has no stable byte-for-byte layout; "+
			"cannot derive a byte codec for aggregates with generic parameters or reference-like fields", path, t.Kind())
	}
}

type structCodec[T any] struct {
	length int
}

func (c structCodec[T]) Length() int { return c.length }

func (c structCodec[T]) Read(b []byte) T {
	var v T
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&v)), c.length)
	copy(dst, b)
	return v
}

func (c structCodec[T]) Write(v T, b []byte) {
	src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), c.length)
	copy(b, src)
}
