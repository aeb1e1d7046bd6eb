package soa

// NameHash identifies a column by its symbolic name.
type NameHash uint32

const nameHashBits = 26

// Hash computes the symbolic hash of a name. The empty name hashes to zero.
//
//	h("")   = 0
//	h(s)    = (s[0] + 33 * h(s[1:])) mod 2^26
func Hash(name string) NameHash {
	var hash uint32

	for idx := len(name) - 1; idx >= 0; idx-- {
		hash = (uint32(name[idx]) + 33*hash) & (1<<nameHashBits - 1)
	}

	return NameHash(hash)
}
