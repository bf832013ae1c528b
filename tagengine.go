package dercodec

/*
tagengine.go resolves the identifier octets for a [Node] by walking its
TAG-child chain, per spec.md's tag engine: a node may carry zero or
more TagType children under Down (interleaved with a possible SizeType
child), each holding a class, a tag number (Num) and an Explicit flag.
The chain is walked left to right, tracking one pending implicit tag
that a later EXPLICIT TAG child can still wrap - so a node can carry
several stacked EXPLICIT layers, and an EXPLICIT layer encountered
while an IMPLICIT tag is still pending wraps that pending tag rather
than its own declared number.
*/

/*
tagSpec is one class/tag pair, either a TAG child's own declared
override or the pending-implicit value an EXPLICIT layer ends up
wrapping.
*/
type tagSpec struct {
	class, num int
}

/*
compoundFor reports whether n's UNIVERSAL encoding is constructed.
SEQUENCE, SEQUENCE OF, SET and SET OF always are; every other leaf
type that this codec handles is DER-primitive.
*/
func compoundFor(t NodeType) bool {
	switch t {
	case SequenceType, SequenceOfType, SetType, SetOfType:
		return true
	default:
		return false
	}
}

/*
tagChain returns n's TagType children in declaration order, skipping
any interleaved SizeType sibling.
*/
func tagChain(n *Node) []*Node {
	var chain []*Node
	for c := n.Down; c != nil; c = c.Right {
		if c.Type == TagType {
			chain = append(chain, c)
		}
	}
	return chain
}

/*
hasTagChain reports whether n carries at least one TAG override,
matching spec.md's has_tag flag without requiring callers to keep it
in sync by hand.
*/
func hasTagChain(n *Node) bool {
	return len(tagChain(n)) > 0
}

/*
resolveTagging walks n's TAG chain and returns the EXPLICIT wrap
layers (outer to inner, in the order their TAG nodes were
encountered) plus the class/tag/compound triple for n's own
identifier - n's UNIVERSAL tag, or the last unconsumed IMPLICIT tag's
class/number if one remains pending at the end of the chain.
*/
func resolveTagging(n *Node) (wraps []tagSpec, class, tag int, compound bool) {
	class, tag = ClassUniversal, universalTag[n.Type]
	compound = compoundFor(n.Type)
	if n.Type == TimeType && n.Flags.has(IsUTCTime) {
		tag = TagUTCTime
	}

	var pending *tagSpec
	for _, c := range tagChain(n) {
		spec := tagSpec{class: c.Class, num: c.Num}
		if c.Flags.has(Explicit) {
			if pending != nil {
				wraps = append(wraps, *pending)
				pending = nil
			} else {
				wraps = append(wraps, spec)
			}
			continue
		}
		if pending == nil {
			pending = &spec
		}
	}

	if pending != nil {
		class, tag = pending.class, pending.num
	}
	return
}

/*
effectiveTag resolves n's own wire-level class, tag number and
compound bit - the innermost identifier, after any pending IMPLICIT
override but before any EXPLICIT wrap layers are applied.
*/
func effectiveTag(n *Node) (class, tag int, compound bool) {
	_, class, tag, compound = resolveTagging(n)
	return
}

/*
wireTag returns the identifier that actually appears first on the
wire for n: the outermost EXPLICIT wrap's class/tag if n carries one,
otherwise its own effective tag. [canonicalizeSet] sorts SET members
by this, matching spec.md's "taken from the wire" ordering key.
*/
func wireTag(n *Node) (class, tag int) {
	wraps, class, tag, _ := resolveTagging(n)
	if len(wraps) > 0 {
		return wraps[0].class, wraps[0].num
	}
	return class, tag
}

/*
extractTag verifies that the identifier octets at data's front match
n's expected class/tag - the outermost wrap when n carries one,
otherwise its own effective tag - returning the number of octets
consumed.
*/
func extractTag(n *Node, data []byte) (consumed int, err error) {
	wantClass, wantTag := wireTag(n)

	gotClass, gotTag, _, n1, derr := decodeTag(data)
	if derr != nil {
		return 0, derr
	}
	if n.Type == AnyType {
		// ANY accepts whatever identifier is present; the caller
		// captures the full TLV rather than validating its tag.
		return n1, nil
	}
	if gotClass != wantClass || gotTag != wantTag {
		return 0, errorASN1TagInClass(wantClass, wantTag, gotClass, gotTag)
	}
	return n1, nil
}
