//go:build !domdebug

package dom

// debugAssertions enables link consistency checks inside the mutation
// operations. Build with -tags domdebug to turn them on.
const debugAssertions = false
