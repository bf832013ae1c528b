package dercodec

/*
set.go contains the DER canonicalisation rules for SET and SET OF: the
two cases where sibling order on the wire is not the schema's
declaration order but a sort imposed at encode time.
*/

import (
	"bytes"
	"slices"
)

/*
setElement pairs an already-encoded member with the class/tag it was
encoded under, so [canonicalizeSet] can sort by tag without
re-parsing the identifier octets it just produced.
*/
type setElement struct {
	class, tag int
	encoded    []byte
}

/*
canonicalizeSet reorders elems into DER SET order: ascending by the
32-bit key (class<<24 | tag). A stable sort is used even though no two
elements share a key in a well-formed schema, matching the DER text's
"the canonical order is determined by their tags" rule without relying
on that uniqueness.
*/
func canonicalizeSet(elems []setElement) {
	slices.SortStableFunc(elems, func(a, b setElement) int {
		ak := int64(a.class)<<24 | int64(a.tag)
		bk := int64(b.class)<<24 | int64(b.tag)
		switch {
		case ak < bk:
			return -1
		case ak > bk:
			return 1
		default:
			return 0
		}
	})
}

/*
canonicalizeSetOf reorders the raw encoded bytes of repeated SET OF
elements into DER order: ascending lexicographic order of the encoded
octets, where a proper prefix sorts before the string it is a prefix
of. [bytes.Compare] already implements exactly this rule.
*/
func canonicalizeSetOf(elems [][]byte) {
	slices.SortStableFunc(elems, func(a, b []byte) int {
		return bytes.Compare(a, b)
	})
}
