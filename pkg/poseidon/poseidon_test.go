package poseidon

import (
	"testing"

	"github.com/certen/leansig-verifier/pkg/field"
)

func TestPermute16Deterministic(t *testing.T) {
	var a, b [Width16]field.Elem
	for i := range a {
		a[i] = field.New(uint32(i) * 7919)
		b[i] = a[i]
	}
	Permute16(&a)
	Permute16(&b)
	if a != b {
		t.Fatalf("Permute16 is not deterministic")
	}
}

func TestPermute16ChangesState(t *testing.T) {
	var state [Width16]field.Elem
	for i := range state {
		state[i] = field.New(uint32(i + 1))
	}
	orig := state
	Permute16(&state)
	if state == orig {
		t.Fatalf("Permute16 left the state unchanged")
	}
}

func TestCompress16FeedForward(t *testing.T) {
	input := make([]field.Elem, 14)
	for i := range input {
		input[i] = field.New(uint32(i) + 1)
	}
	out := Compress16(input, HashLen)
	if len(out) != HashLen {
		t.Fatalf("got %d outputs, want %d", len(out), HashLen)
	}

	var padded [Width16]field.Elem
	copy(padded[:], input)
	state := padded
	Permute16(&state)
	for i := 0; i < HashLen; i++ {
		want := state[i].Add(padded[i])
		if out[i] != want {
			t.Errorf("lane %d: got %d, want %d", i, out[i].Value(), want.Value())
		}
	}
}

func TestCompress24Deterministic(t *testing.T) {
	input := make([]field.Elem, 21)
	for i := range input {
		input[i] = field.New(uint32(i) * 31)
	}
	a := Compress24(input, HashLen)
	b := Compress24(input, HashLen)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Compress24 is not deterministic at lane %d", i)
		}
	}
}

func TestTweakFieldElementsSeparateDomains(t *testing.T) {
	tree := TreeTweak(0, 5)
	chain := ChainTweak(0, 5, 0)
	treeFE := tree.FieldElements()
	chainFE := chain.FieldElements()
	if treeFE == chainFE {
		t.Fatalf("tree and chain tweaks with overlapping numeric fields collided")
	}
}

func TestTweakPackingMatchesSpec(t *testing.T) {
	tw := TreeTweak(3, 9)
	want := uint64(3)<<40 | uint64(9)<<8 | 0x01
	if got := tw.packed(); got != want {
		t.Errorf("tree packed = %#x, want %#x", got, want)
	}

	ct := ChainTweak(1, 2, 3)
	wantC := uint64(1)<<24 | uint64(2)<<16 | uint64(3)<<8 | 0x00
	if got := ct.packed(); got != wantC {
		t.Errorf("chain packed = %#x, want %#x", got, wantC)
	}
}

func TestSafeDomainSeparatorDeterministic(t *testing.T) {
	a := SafeDomainSeparator24([4]uint32{5, 2, 155, 7})
	b := SafeDomainSeparator24([4]uint32{5, 2, 155, 7})
	if a != b {
		t.Fatalf("SafeDomainSeparator24 is not deterministic")
	}
	c := SafeDomainSeparator24([4]uint32{5, 2, 2, 7})
	if a == c {
		t.Fatalf("different block counts produced the same domain separator")
	}
}

func TestApplySingleVsPairVsSpongeDoNotCollide(t *testing.T) {
	var parameter [ParameterLen]field.Elem
	for i := range parameter {
		parameter[i] = field.New(uint32(i) + 100)
	}
	var block [HashLen]field.Elem
	for i := range block {
		block[i] = field.New(uint32(i) + 1)
	}

	out1 := Apply(parameter, ChainTweak(0, 0, 1), [][HashLen]field.Elem{block})
	out2 := Apply(parameter, TreeTweak(1, 0), [][HashLen]field.Elem{block, block})

	blocks := make([][HashLen]field.Elem, 155)
	for i := range blocks {
		blocks[i] = block
	}
	out3 := Apply(parameter, TreeTweak(0, 0), blocks)

	if out1 == out2 || out2 == out3 || out1 == out3 {
		t.Fatalf("single/pair/sponge paths collided for related inputs")
	}
}
