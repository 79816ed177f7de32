package atomspace

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Reserved symbols used across node/link identity and pattern queries.
const (
	// Wildcard is the sentinel used in pattern queries. It is never
	// produced by any of the hash functions below.
	Wildcard = "*"

	// TypeDefMark is the head symbol of every TypeDef id.
	TypeDefMark = ":"

	// RootType is the parent type of every TypeDef.
	RootType = "Type"
)

// fieldSep separates fields inside a hash input so that e.g.
// ("ab", "c") and ("a", "bc") never collide.
const fieldSep = '\x1f'

// digest hex-encodes the xxhash of b.
func digest(b []byte) string {
	sum := xxhash.Sum64(b)
	return strconv.FormatUint(sum, 16)
}

// NamedTypeHash returns the digest of a bare type symbol, e.g. "Concept".
func NamedTypeHash(name string) string {
	return digest([]byte(name))
}

// TerminalHash returns the digest over the (type, name) tuple of a
// node. It is distinct from NamedTypeHash(type) and from
// NamedTypeHash(name).
func TerminalHash(nodeType, name string) string {
	var b strings.Builder
	b.WriteString(nodeType)
	b.WriteByte(fieldSep)
	b.WriteString(name)
	return digest([]byte(b.String()))
}

// ExpressionHash returns the digest over a head hash followed by an
// ordered list of child hashes. Order-sensitive.
func ExpressionHash(headHash string, childHashes []string) string {
	var b strings.Builder
	b.WriteString(headHash)
	for _, c := range childHashes {
		b.WriteByte(fieldSep)
		b.WriteString(c)
	}
	return digest([]byte(b.String()))
}

// CompositeHash folds an ordered list of hashes (or the Wildcard
// sentinel) into a single digest. Used both to collapse a nested
// composite-type signature and to compute pattern fingerprints.
func CompositeHash(hashes []string) string {
	var b strings.Builder
	for i, h := range hashes {
		if i > 0 {
			b.WriteByte(fieldSep)
		}
		b.WriteString(h)
	}
	return digest([]byte(b.String()))
}
