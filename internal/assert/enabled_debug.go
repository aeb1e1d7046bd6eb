//go:build soadebug

package assert

const Enabled = true
