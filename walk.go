package dercodec

/*
walk.go implements the tree walker: [encodeNode] builds DER bytes
bottom-up from a [Node] tree, [decodeNode] parses DER bytes top-down
into one. Both dispatch on NodeType the way the original asn1_create_der
/ asn1_get_der switch over ASN.1 type does, generalized to spec.md's
Node shape.

Unlike the original walker, encodeNode needs no back-patch bookkeeping
for a constructed node's length: each child's bytes are fully computed
and returned before its parent assembles its own length octets, so
there is no placeholder gap to fill in later. This retires the
scratch-in-node back-patch storage spec.md's Design Notes flags for
redesign without introducing a replacement map in its place - a
bottom-up recursive walker simply never needs one.

decodeNode instead mutates the nodes it is given: Value (and Bits, for
a BIT STRING) as it parses content, Flags' IsUTCTime bit to match the
TIME tag found on the wire, and Flags' IsNotUsed bit when an
OPTIONAL/DEFAULT member is absent or a CHOICE alternative loses. A
SEQUENCE OF / SET OF node's template child is replaced by one decoded
clone per element. Absent members and losing alternatives are only
marked IsNotUsed, not spliced out mid-walk. Call [DeleteNotUsed]
once, after a decode fully succeeds, to drop the marked nodes. A Node
tree must not be decoded into concurrently by more than one goroutine;
give each goroutine its own tree (see [Clone]).
*/

func encodeTagLengthValue(class, tag int, compound bool, content []byte) []byte {
	out := encodeTagBytes(class, tag, compound)
	out = append(out, encodeLength(len(content))...)
	return append(out, content...)
}

func firstActiveChild(n *Node) *Node {
	for c := n.Down; c != nil; c = c.Right {
		if !c.Flags.has(IsNotUsed) {
			return c
		}
	}
	return nil
}

/*
encodeNode returns n's full DER encoding (identifier, length and
content octets), or nil with no error if n is marked IsNotUsed (an
absent OPTIONAL member, an omitted DEFAULT, or a losing CHOICE
alternative contribute zero bytes).
*/
func encodeNode(n *Node) ([]byte, error) {
	if n == nil {
		return nil, nil
	}
	if n.Flags.has(IsNotUsed) {
		return nil, nil
	}

	switch n.Type {
	case AnyType:
		return n.Value, nil
	case ChoiceType:
		chosen := firstActiveChild(n)
		if chosen == nil {
			return nil, newCodecErr(TagError, n, "no CHOICE alternative selected")
		}
		return encodeNode(chosen)
	}

	wraps, class, tag, compound := resolveTagging(n)
	content, err := encodeContent(n)
	if err != nil {
		return nil, err
	}

	out := encodeTagLengthValue(class, tag, compound, content)
	for i := len(wraps) - 1; i >= 0; i-- {
		out = encodeTagLengthValue(wraps[i].class, wraps[i].num, true, out)
	}
	return out, nil
}

func encodeContent(n *Node) ([]byte, error) {
	switch n.Type {
	case BooleanType:
		if len(n.Value) > 0 && n.Value[0] == 'F' {
			return []byte{0x00}, nil
		}
		return []byte{0xFF}, nil
	case IntegerType, EnumeratedType, ObjectIDType:
		return n.Value, nil
	case OctetStringType:
		return encodeOctetString(n.Value), nil
	case TimeType:
		return encodeTime(n.Value), nil
	case NullType:
		if len(n.Value) != 0 {
			return nil, newCodecErr(DERError, n, "NULL must have no content")
		}
		return nil, nil
	case BitStringType:
		return encodeBitString(n.Value, n.Bits), nil
	case SequenceType, SequenceOfType:
		var parts [][]byte
		for c := n.Down; c != nil; c = c.Right {
			if c.Type == TagType || c.Type == SizeType {
				continue
			}
			enc, err := encodeNode(c)
			if err != nil {
				return nil, err
			}
			parts = append(parts, enc)
		}
		return concatPooled(parts), nil
	case SetType:
		var elems []setElement
		for c := n.Down; c != nil; c = c.Right {
			if c.Type == TagType || c.Type == SizeType || c.Flags.has(IsNotUsed) {
				continue
			}
			enc, err := encodeNode(c)
			if err != nil {
				return nil, err
			}
			class, tag := wireTag(c)
			elems = append(elems, setElement{class: class, tag: tag, encoded: enc})
		}
		canonicalizeSet(elems)
		parts := make([][]byte, len(elems))
		for i, e := range elems {
			parts[i] = e.encoded
		}
		return concatPooled(parts), nil
	case SetOfType:
		var parts [][]byte
		for c := n.Down; c != nil; c = c.Right {
			if c.Type == TagType || c.Type == SizeType || c.Flags.has(IsNotUsed) {
				continue
			}
			enc, err := encodeNode(c)
			if err != nil {
				return nil, err
			}
			parts = append(parts, enc)
		}
		canonicalizeSetOf(parts)
		return concatPooled(parts), nil
	default:
		return nil, newCodecErr(GenericError, n, "unsupported node type for encoding")
	}
}

/*
peekTag reports whether the identifier octets at the front of data
match the identifier n is expected to carry on the wire (its own tag,
or the outer wrapper tag when n is EXPLICITly tagged). CHOICE and ANY
report a match whenever data is non-empty: the caller resolves which
branch wins by other means.
*/
func peekTag(n *Node, data []byte) bool {
	if n.Type == ChoiceType || n.Type == AnyType {
		return len(data) > 0
	}
	gotClass, gotTag, _, _, err := decodeTag(data)
	if err != nil {
		return false
	}
	if n.Type == TimeType && !hasTagChain(n) {
		return gotClass == ClassUniversal && (gotTag == TagUTCTime || gotTag == TagGeneralizedTime)
	}
	wantClass, wantTag := wireTag(n)
	return gotClass == wantClass && gotTag == wantTag
}

/*
traceFunc, when non-nil, is invoked once for every successfully
decoded node with the node's absolute byte span in the original input.
[Locate] uses this to recover a single node's span without otherwise
changing the decode walk.
*/
type traceFunc func(n *Node, path string, start, end int)

func decodeNode(n *Node, data []byte, base int, path string, trace traceFunc) (consumed int, err error) {
	if n == nil {
		return 0, nil
	}

	childPath := path
	if n.Name != "" {
		if childPath != "" {
			childPath += "."
		}
		childPath += n.Name
	}

	switch n.Type {
	case ChoiceType:
		for c := n.Down; c != nil; c = c.Right {
			if !peekTag(c, data) {
				continue
			}
			consumed, err = decodeNode(c, data, base, childPath, trace)
			if err != nil {
				return 0, err
			}
			for s := n.Down; s != nil; s = s.Right {
				if s != c {
					s.Flags |= IsNotUsed
				}
			}
			if trace != nil {
				trace(n, childPath, base, base+consumed)
			}
			if c.Type == AnyType {
				return consumed, newCodecErr(TypeAny, c, "CHOICE resolved to ANY")
			}
			return consumed, nil
		}
		return 0, newCodecErr(TagError, n, "no CHOICE alternative matched")

	case AnyType:
		_, _, _, idLen, derr := decodeTag(data)
		if derr != nil {
			return 0, derr
		}
		length, lenLen, lerr := decodeLength(data[idLen:])
		if lerr != nil {
			return 0, lerr
		}
		total := idLen + lenLen + length
		if total > len(data) {
			return 0, errorTruncatedContent
		}
		n.Value = append([]byte(nil), data[:total]...)
		if trace != nil {
			trace(n, childPath, base, base+total)
		}
		return total, nil
	}

	wraps, innerClass, innerTag, _ := resolveTagging(n)
	layers := make([]tagSpec, 0, len(wraps)+1)
	layers = append(layers, wraps...)
	layers = append(layers, tagSpec{class: innerClass, num: innerTag})

	cur := data
	curBase := base
	total := 0
	var content []byte

	for i, layer := range layers {
		gotClass, gotTag, _, idLen, derr := decodeTag(cur)
		if derr != nil {
			if i == 0 && (n.Flags.has(IsOptional) || n.Flags.has(IsDefault)) {
				n.Flags |= IsNotUsed
				return 0, nil
			}
			return 0, derr
		}

		if i == len(layers)-1 && n.Type == TimeType && !hasTagChain(n) &&
			gotClass == ClassUniversal && (gotTag == TagUTCTime || gotTag == TagGeneralizedTime) {
			if gotTag == TagUTCTime {
				n.Flags |= IsUTCTime
			} else {
				n.Flags &^= IsUTCTime
			}
			layer.num = gotTag
		}

		if gotClass != layer.class || gotTag != layer.num {
			if i == 0 && (n.Flags.has(IsOptional) || n.Flags.has(IsDefault)) {
				n.Flags |= IsNotUsed
				return 0, nil
			}
			if len(layers) > 1 {
				return 0, newCodecErr(TagError, n, "unexpected tag under TAG chain")
			}
			return 0, newCodecErr(TagError, n, "unexpected tag")
		}

		length, lenLen, lerr := decodeLength(cur[idLen:])
		if lerr != nil {
			return 0, lerr
		}
		contentStart := idLen + lenLen
		if contentStart+length > len(cur) {
			return 0, errorTruncatedContent
		}
		layerContent := cur[contentStart : contentStart+length]

		if i == 0 {
			total = contentStart + length
		}
		curBase += contentStart
		cur = layerContent
		content = layerContent
	}

	if err = decodeContent(n, content, curBase, childPath, trace); err != nil {
		return 0, err
	}

	if trace != nil {
		trace(n, childPath, base, base+total)
	}
	return total, nil
}

func decodeContent(n *Node, content []byte, base int, path string, trace traceFunc) error {
	switch n.Type {
	case BooleanType:
		if len(content) > 0 && content[0] != 0x00 {
			n.Value = []byte("T")
		} else {
			n.Value = []byte("F")
		}
		return nil
	case IntegerType, EnumeratedType, ObjectIDType:
		n.Value = append([]byte(nil), content...)
		return nil
	case OctetStringType:
		n.Value = append([]byte(nil), decodeOctetString(content)...)
		return nil
	case TimeType:
		// Flags.IsUTCTime was already resolved against the wire tag
		// in decodeNode, before the length/content were even parsed.
		n.Value = append([]byte(nil), decodeTime(content)...)
		return nil
	case NullType:
		if len(content) != 0 {
			return newCodecErr(DERError, n, "NULL must have no content")
		}
		return nil
	case BitStringType:
		bits, bitLen, err := decodeBitString(content)
		if err != nil {
			return newCodecErr(DERError, n, err.Error())
		}
		n.Value = append([]byte(nil), bits...)
		n.Bits = bitLen
		return nil
	case SequenceType:
		offset := 0
		for c := n.Down; c != nil; c = c.Right {
			if c.Type == TagType || c.Type == SizeType {
				continue
			}
			if offset >= len(content) || !peekTag(c, content[offset:]) {
				if c.Flags.has(IsOptional) || c.Flags.has(IsDefault) {
					c.Flags |= IsNotUsed
					continue
				}
				return newCodecErr(TagError, c, "missing required element")
			}
			used, err := decodeNode(c, content[offset:], base+offset, path, trace)
			if err != nil {
				return err
			}
			offset += used
		}
		if offset != len(content) {
			return newCodecErr(DERError, n, "trailing content in SEQUENCE")
		}
		return nil
	case SequenceOfType:
		template := n.Down
		n.Down = nil
		offset := 0
		for offset < len(content) {
			elem := deepClone(template)
			used, err := decodeNode(elem, content[offset:], base+offset, path, trace)
			if err != nil {
				return err
			}
			AppendSequenceSet(n, elem)
			offset += used
		}
		return nil
	case SetOfType:
		template := n.Down
		n.Down = nil
		offset := 0
		for offset < len(content) {
			elem := deepClone(template)
			used, err := decodeNode(elem, content[offset:], base+offset, path, trace)
			if err != nil {
				return err
			}
			AppendSequenceSet(n, elem)
			offset += used
		}
		return nil
	case SetType:
		pool := make([]*Node, 0)
		for c := n.Down; c != nil; c = c.Right {
			if c.Type == TagType || c.Type == SizeType {
				continue
			}
			pool = append(pool, c)
		}
		done := make([]bool, len(pool))
		offset := 0
		for offset < len(content) {
			matched := false
			for i, c := range pool {
				if done[i] || c.Flags.has(IsNotUsed) {
					continue
				}
				if peekTag(c, content[offset:]) {
					used, err := decodeNode(c, content[offset:], base+offset, path, trace)
					if err != nil {
						return err
					}
					offset += used
					done[i] = true
					matched = true
					break
				}
			}
			if !matched {
				return newCodecErr(TagError, n, "unmatched SET member")
			}
		}
		for i, c := range pool {
			if !done[i] && !c.Flags.has(IsNotUsed) {
				if c.Flags.has(IsOptional) || c.Flags.has(IsDefault) {
					c.Flags |= IsNotUsed
				} else {
					return newCodecErr(TagError, c, "missing required SET member")
				}
			}
		}
		return nil
	default:
		return newCodecErr(GenericError, n, "unsupported node type for decoding")
	}
}
