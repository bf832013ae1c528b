package dercodec

/*
codec.go holds the public entry points Encode, Decode and Clone;
[Locate], the fourth, lives in locate.go. Everything else in this
package exists to serve these four entry points.
*/

/*
Encode resolves the subtree named by name (dotted path, or "" for root
itself) under root via [FindNode], walks it bottom-up, and writes its
DER encoding into out, returning the number of bytes written. root is
not mutated. A name that resolves to nothing fails with
ElementNotFound; an out shorter than the encoding fails with MemError.
*/
func Encode(root *Node, name string, out []byte) (n int, err error) {
	if root == nil {
		return 0, newCodecErr(GenericError, nil, "nil schema")
	}
	target := FindNode(root, name)
	if target == nil {
		return 0, newCodecErr(ElementNotFound, nil, errorElementNotFound.Error()+": "+name)
	}

	enc, eerr := encodeNode(target)
	if eerr != nil {
		if ce, ok := eerr.(*CodecError); ok {
			return 0, ce
		}
		return 0, newCodecErr(DERError, target, eerr.Error())
	}
	if len(enc) > len(out) {
		return 0, newCodecErr(MemError, target, errorBufferTooSmall.Error())
	}
	return copy(out, enc), nil
}

/*
Decode parses data against schema, populating Value/Bits on schema's
nodes in place and pruning OPTIONAL/DEFAULT-absent members and losing
CHOICE alternatives from the tree before returning. schema is mutated;
give each concurrent caller its own tree via [Clone].
*/
func Decode(schema *Node, data []byte) error {
	if schema == nil {
		return newCodecErr(GenericError, nil, "nil schema")
	}

	consumed, err := decodeNode(schema, data, 0, "", nil)
	if err != nil {
		if ce, ok := err.(*CodecError); ok {
			if ce.Code == TypeAny {
				DeleteNotUsed(schema)
				return nil
			}
			return ce
		}
		return newCodecErr(DERError, schema, err.Error())
	}
	if consumed != len(data) {
		return newCodecErr(DERError, schema, "trailing bytes after top-level element")
	}

	DeleteNotUsed(schema)
	return nil
}

/*
Clone returns a structural copy of schema suitable for passing to
Decode on a separate goroutine: independent Value/Flags storage
throughout, sharing no Node with the original.
*/
func Clone(schema *Node) *Node {
	return deepClone(schema)
}
