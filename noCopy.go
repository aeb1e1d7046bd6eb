package soa

// noCopy can be embedded to provide "go vet" linting
// when a type should not - but is - be copied. A copied Table
// would share its storage with the original.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
