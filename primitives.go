package dercodec

/*
primitives.go implements the leaf-value codecs spec.md's Primitive
codec component describes: OCTET STRING and TIME (raw payload, no
special framing beyond length), BIT STRING (pad-count octet plus
masked trailing bits), and OBJECT IDENTIFIER (arc splitting and
base-128 arc encoding).
*/

import "golang.org/x/exp/constraints"

/*
encodeOctetString and encodeTime are identical: both hand back their
input payload unchanged, since a Node's Value already holds the exact
wire content for these types. They exist as named functions, not a
shared alias, so each type's call site in walk.go reads as what it is.
*/
func encodeOctetString(v []byte) []byte { return v }
func decodeOctetString(v []byte) []byte { return v }
func encodeTime(v []byte) []byte        { return v }
func decodeTime(v []byte) []byte        { return v }

var bitPadMask = [8]byte{0xFF, 0xFE, 0xFC, 0xF8, 0xF0, 0xE0, 0xC0, 0x80}

/*
encodeBitString returns the DER content octets for a BIT STRING:
a leading pad-count octet (0-7, the number of unused low-order bits in
the final content octet) followed by bits, with any unused trailing
bits forced to zero as DER requires.
*/
func encodeBitString(bits []byte, bitLen int) []byte {
	fullBytes := bitLen / 8
	rem := bitLen % 8
	contentLen := fullBytes
	if rem > 0 {
		contentLen++
	}
	if contentLen > len(bits) {
		contentLen = len(bits)
	}

	pad := 0
	if rem > 0 {
		pad = 8 - rem
	}

	out := make([]byte, 1+contentLen)
	out[0] = byte(pad)
	copy(out[1:], bits[:contentLen])
	if pad > 0 && contentLen > 0 {
		out[len(out)-1] &= bitPadMask[pad]
	}
	return out
}

/*
decodeBitString splits DER BIT STRING content into its bits and
effective bit count, rejecting a pad count outside 0-7 or a nonzero
pad count on an empty bit string (both DER violations).
*/
func decodeBitString(content []byte) (bits []byte, bitLen int, err error) {
	if len(content) == 0 {
		err = mkerr("BIT STRING: missing pad-count octet")
		return
	}
	pad := int(content[0])
	if pad > 7 {
		err = mkerr("BIT STRING: invalid pad count")
		return
	}
	if pad > 0 && len(content) == 1 {
		err = mkerr("BIT STRING: pad count nonzero on empty content")
		return
	}
	bits = content[1:]
	bitLen = len(bits)*8 - pad
	return
}

/*
parseArcs splits a dotted/spaced OID string ("1.2.840.113549.1.1.11"
or "1 2 840 113549 1 1 11") into its arc values. It is generic over
the arc integer type; each arc is parsed as an int and then converted
to T, so an arc that does not fit in an int is rejected.
*/
func parseArcs[T constraints.Integer](s string) ([]T, error) {
	fields := splitArcString(s)
	if len(fields) < 2 {
		return nil, errorInvalidOID
	}

	out := make([]T, 0, len(fields))
	for _, f := range fields {
		n, err := atoi(f)
		if err != nil || n < 0 {
			return nil, errorInvalidOID
		}
		out = append(out, T(n))
	}
	return out, nil
}

func splitArcString(s string) []string {
	s = replaceAll(trimS(s), ".", " ")
	var fields []string
	for _, f := range split(s, " ") {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

/*
encodeOID returns the DER content octets for an OBJECT IDENTIFIER
given its arc values: the first two arcs combine into a single octet
as 40*arc[0]+arc[1], and every following arc is base-128 encoded.
*/
func encodeOID[T constraints.Integer](arcs []T) ([]byte, error) {
	if len(arcs) < 2 {
		return nil, errorInvalidOID
	}
	if arcs[0] > 2 || (arcs[0] < 2 && arcs[1] >= 40) {
		return nil, errorInvalidOID
	}

	out := []byte{byte(int(arcs[0])*40 + int(arcs[1]))}
	for _, a := range arcs[2:] {
		out = append(out, encodeBase128Int(int(a))...)
	}
	return out, nil
}

/*
decodeOID reverses [encodeOID], splitting the first content octet
back into its two leading arcs and walking the remaining base-128
arcs in sequence.
*/
func decodeOID(content []byte) ([]int, error) {
	if len(content) == 0 {
		return nil, errorInvalidOID
	}

	first := int(content[0])
	a0, a1 := first/40, first-40*(first/40)

	arcs := []int{a0, a1}
	rest := content[1:]
	for len(rest) > 0 {
		n, consumed, err := readBase128Int(rest)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, n)
		rest = rest[consumed:]
	}
	return arcs, nil
}

/*
formatOID renders decoded arcs back into "a b c d" form, the string
representation spec.md's round-trip property checks against.
*/
func formatOID(arcs []int) string {
	strs := make([]string, len(arcs))
	for i, a := range arcs {
		strs[i] = itoa(a)
	}
	return join(strs, " ")
}
