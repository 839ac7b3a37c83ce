package Go_Ranges

import (
	_ "runtime"
	_ "unsafe"
)

// CheapRandN returns a pseudo random number in [0,n). It's fast and not cryptographically secure.
//
//go:linkname CheapRandN runtime.cheaprandn
//go:nosplit
func CheapRandN(n uint32) uint32
