package dercodec

import "testing"

func TestCodeString(t *testing.T) {
	for idx, cas := range []struct {
		code Code
		want string
	}{
		{OK, "OK"},
		{ElementNotFound, "ElementNotFound"},
		{DERError, "DERError"},
		{TagError, "TagError"},
		{MemError, "MemError"},
		{TypeAny, "TypeAny"},
		{Code(99), "GenericError"},
	} {
		if got := cas.code.String(); got != cas.want {
			t.Errorf("%s[%d] failed: Code.String() = %s, want %s", t.Name(), idx, got, cas.want)
		}
	}
}

func TestCodecError(t *testing.T) {
	n := &Node{Name: "field2"}
	e := newCodecErr(TagError, n, "unexpected tag")
	if got := e.Error(); got != "TagError: unexpected tag (node field2)" {
		t.Errorf("%s failed: Error() = %q", t.Name(), got)
	}

	e2 := newCodecErr(DERError, nil, "bad length")
	if got := e2.Error(); got != "DERError: bad length" {
		t.Errorf("%s failed: Error() = %q", t.Name(), got)
	}

	var nilErr *CodecError
	if nilErr.Error() != "" {
		t.Errorf("%s failed: nil receiver should yield empty string", t.Name())
	}
}

func TestASN1TagInClass(t *testing.T) {
	if err := errorASN1TagInClass(2, 1, 2, 1); err != nil {
		t.Errorf("%s failed: expected nil on matching class/tag, got %v", t.Name(), err)
	}
	if err := errorASN1TagInClass(2, 1, 3, 4); err == nil {
		t.Errorf("%s failed: expected error on mismatched class/tag", t.Name())
	}
}

func TestMkerrf_Cache(t *testing.T) {
	a := mkerrf("same message")
	b := mkerrf("same message")
	if a != b {
		t.Errorf("%s failed: expected cached error to be reused", t.Name())
	}
}
