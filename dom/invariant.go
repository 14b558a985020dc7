package dom

// invariant panics with an InvalidStateError when cond is false. Callers
// guard it with debugAssertions so release builds skip the checks entirely.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(violation(format, args...))
	}
}
