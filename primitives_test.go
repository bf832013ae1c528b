package dercodec

import "testing"

func TestBitStringRoundTrip(t *testing.T) {
	for idx, cas := range []struct {
		bits   []byte
		bitLen int
		want   []byte
	}{
		{[]byte{0b10110000}, 4, []byte{0x04, 0xB0}},
		{[]byte{0xFF, 0xFF}, 16, []byte{0x00, 0xFF, 0xFF}},
		{[]byte{}, 0, []byte{0x00}},
	} {
		enc := encodeBitString(cas.bits, cas.bitLen)
		if !deepEq(enc, cas.want) {
			t.Errorf("%s[%d] failed: encodeBitString = % X, want % X", t.Name(), idx, enc, cas.want)
			continue
		}
		bits, bitLen, err := decodeBitString(enc)
		if err != nil {
			t.Errorf("%s[%d] failed: decodeBitString error: %v", t.Name(), idx, err)
			continue
		}
		if bitLen != cas.bitLen {
			t.Errorf("%s[%d] failed: bitLen = %d, want %d", t.Name(), idx, bitLen, cas.bitLen)
		}
		_ = bits
	}
}

func TestDecodeBitString_Errors(t *testing.T) {
	if _, _, err := decodeBitString(nil); err == nil {
		t.Fatalf("%s failed: expected error on empty content", t.Name())
	}
	if _, _, err := decodeBitString([]byte{0x08}); err == nil {
		t.Fatalf("%s failed: expected error on pad > 7", t.Name())
	}
	if _, _, err := decodeBitString([]byte{0x01}); err == nil {
		t.Fatalf("%s failed: expected error on nonzero pad with empty bits", t.Name())
	}
}

func TestOIDRoundTrip(t *testing.T) {
	// sha256WithRSAEncryption: 1.2.840.113549.1.1.11
	arcs, err := parseArcs[int]("1 2 840 113549 1 1 11")
	if err != nil {
		t.Fatalf("%s failed: parseArcs error: %v", t.Name(), err)
	}

	enc, err := encodeOID(arcs)
	if err != nil {
		t.Fatalf("%s failed: encodeOID error: %v", t.Name(), err)
	}
	want := []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B}
	if !deepEq(enc, want) {
		t.Fatalf("%s failed: encodeOID = % X, want % X", t.Name(), enc, want)
	}

	decoded, err := decodeOID(enc)
	if err != nil {
		t.Fatalf("%s failed: decodeOID error: %v", t.Name(), err)
	}
	if got := formatOID(decoded); got != "1 2 840 113549 1 1 11" {
		t.Fatalf("%s failed: formatOID = %q", t.Name(), got)
	}
}

func TestOIDRoundTrip_LargeFirstOctet(t *testing.T) {
	// arcs [2, 100] produce first_octet 180 (>= 120), which the literal
	// a0 = first/40, a1 = first - 40*a0 formula must still split correctly.
	arcs := []int{2, 100}
	enc, err := encodeOID(arcs)
	if err != nil {
		t.Fatalf("%s failed: encodeOID error: %v", t.Name(), err)
	}
	if enc[0] != 180 {
		t.Fatalf("%s failed: first octet = %d, want 180", t.Name(), enc[0])
	}

	decoded, err := decodeOID(enc)
	if err != nil {
		t.Fatalf("%s failed: decodeOID error: %v", t.Name(), err)
	}
	if got := formatOID(decoded); got != "2 100" {
		t.Fatalf("%s failed: formatOID = %q, want \"2 100\"", t.Name(), got)
	}
}

func TestParseArcs_Errors(t *testing.T) {
	if _, err := parseArcs[int]("1"); err == nil {
		t.Fatalf("%s failed: expected error on single-arc OID", t.Name())
	}
	if _, err := parseArcs[int]("1 x 3"); err == nil {
		t.Fatalf("%s failed: expected error on non-numeric arc", t.Name())
	}
}

func TestEncodeOID_InvalidFirstArcs(t *testing.T) {
	if _, err := encodeOID([]int{3, 1}); err == nil {
		t.Fatalf("%s failed: expected error on arc0 > 2", t.Name())
	}
	if _, err := encodeOID([]int{0, 40}); err == nil {
		t.Fatalf("%s failed: expected error on arc1 >= 40 when arc0 < 2", t.Name())
	}
}
