package apophenia

import (
	"testing"
)

func Test_OffsetFor(t *testing.T) {
	cases := []struct {
		class  SequenceClass
		stream uint32
		index  uint64
		out    string
	}{
		{class: SequenceUniform, stream: 0, index: 0, out: "0x1000000000000000000000000000000"},
		{class: SequenceUniform, stream: 2, index: 5, out: "0x1000000020000000000000000000005"},
		{class: SequenceUniform, stream: 0, index: ^uint64(0), out: "0x100000000000000ffffffffffffffff"},
	}
	for _, c := range cases {
		u := OffsetFor(c.class, c.stream, c.index)
		if s := u.String(); s != c.out {
			t.Fatalf("offset for class %d stream %d index %d: expected %s, got %s",
				c.class, c.stream, c.index, c.out, s)
		}
	}
}
