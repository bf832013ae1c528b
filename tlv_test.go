package dercodec

import "testing"

func TestEncodeDecodeTag(t *testing.T) {
	for idx, cas := range []struct {
		class, tag int
		compound   bool
		want       []byte
	}{
		{ClassUniversal, 4, false, []byte{0x04}},
		{ClassContextSpecific, 4, true, []byte{0xA4}},
		{ClassUniversal, 30, false, []byte{0x1E}},
		{ClassUniversal, 31, false, []byte{0x1F, 0x1F}},
		{ClassUniversal, 300, false, []byte{0x1F, 0x82, 0x2C}},
	} {
		got := encodeTagBytes(cas.class, cas.tag, cas.compound)
		if !deepEq(got, cas.want) {
			t.Errorf("%s[%d] failed: encodeTagBytes = % X, want % X", t.Name(), idx, got, cas.want)
			continue
		}

		class, tag, compound, n, err := decodeTag(got)
		if err != nil {
			t.Errorf("%s[%d] failed: decodeTag error: %v", t.Name(), idx, err)
			continue
		}
		if class != cas.class || tag != cas.tag || compound != cas.compound || n != len(got) {
			t.Errorf("%s[%d] failed: decodeTag = (%d,%d,%t,%d), want (%d,%d,%t,%d)",
				t.Name(), idx, class, tag, compound, n, cas.class, cas.tag, cas.compound, len(got))
		}
	}
}

func TestDecodeTag_Truncated(t *testing.T) {
	if _, _, _, _, err := decodeTag(nil); err == nil {
		t.Fatalf("%s failed: expected error on empty input", t.Name())
	}
	if _, _, _, _, err := decodeTag([]byte{0x1F}); err == nil {
		t.Fatalf("%s failed: expected error on truncated high-tag form", t.Name())
	}
}

func TestEncodeDecodeLength(t *testing.T) {
	for idx, cas := range []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x80}},
		{256, []byte{0x82, 0x01, 0x00}},
		{65535, []byte{0x82, 0xFF, 0xFF}},
	} {
		got := encodeLength(cas.n)
		if !deepEq(got, cas.want) {
			t.Errorf("%s[%d] failed: encodeLength(%d) = % X, want % X", t.Name(), idx, cas.n, got, cas.want)
			continue
		}
		n, consumed, err := decodeLength(got)
		if err != nil {
			t.Errorf("%s[%d] failed: decodeLength error: %v", t.Name(), idx, err)
			continue
		}
		if n != cas.n || consumed != len(got) {
			t.Errorf("%s[%d] failed: decodeLength = (%d,%d), want (%d,%d)",
				t.Name(), idx, n, consumed, cas.n, len(got))
		}
	}
}

func TestDecodeLength_RejectsIndefinite(t *testing.T) {
	_, _, err := decodeLength([]byte{0x80})
	if err == nil {
		t.Fatalf("%s failed: expected indefinite length to be rejected", t.Name())
	}
}

func TestDecodeLength_RejectsNonMinimal(t *testing.T) {
	_, _, err := decodeLength([]byte{0x81, 0x05})
	if err == nil {
		t.Fatalf("%s failed: expected non-minimal long form to be rejected", t.Name())
	}
}

func TestDecodeLength_Empty(t *testing.T) {
	if _, _, err := decodeLength(nil); err == nil {
		t.Fatalf("%s failed: expected error on empty input", t.Name())
	}
}

func TestEncodeBase128Int_ContinuationBit(t *testing.T) {
	out := encodeBase128Int(200)

	if len(out) != 2 {
		t.Fatalf("%s failed: expected 2-byte result, got %d bytes", t.Name(), len(out))
	}
	if out[0]&0x80 == 0 {
		t.Fatalf("%s failed: continuation bit not set on first byte: %02X", t.Name(), out[0])
	}
	if out[1]&0x80 != 0 {
		t.Fatalf("%s failed: continuation bit wrongly set on final byte: %02X", t.Name(), out[1])
	}
}

func TestReadBase128Int_Truncated(t *testing.T) {
	_, _, err := readBase128Int(nil)
	if err == nil {
		t.Fatalf("%s failed: expected truncated-integer error", t.Name())
	}
}
