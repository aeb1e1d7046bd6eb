//go:build !soadebug

package assert

// Enabled reports whether debug checks are compiled in.
const Enabled = false
