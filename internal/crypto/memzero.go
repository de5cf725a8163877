package crypto

import "runtime"

// Wipe zeroes b. Best effort: the compiler may still have copied the data
// elsewhere.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}
