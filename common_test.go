package dercodec

import (
	"bytes"
	"testing"
)

func deepEq(a, b []byte) bool { return bytes.Equal(a, b) }

func TestValidClass(t *testing.T) {
	for idx, cas := range []struct {
		class int
		want  bool
	}{
		{ClassUniversal, true},
		{ClassPrivate, true},
		{-1, false},
		{9, false},
	} {
		if got := validClass(cas.class); got != cas.want {
			t.Errorf("%s[%d] failed: validClass(%d) = %t, want %t", t.Name(), idx, cas.class, got, cas.want)
		}
	}
}
