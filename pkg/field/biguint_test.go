package field

import "testing"

func TestSmallBigUintMulAddDiv(t *testing.T) {
	z := FromU64(1000)
	z.MulSmall(7)
	z.AddSmall(3)
	// 1000*7+3 = 7003
	rem := z.DivSmall(1000)
	if rem != 3 {
		t.Errorf("rem = %d, want 3", rem)
	}
	rem2 := z.DivSmall(1)
	if rem2 != 0 {
		t.Errorf("rem2 = %d, want 0", rem2)
	}
	// z is now 7; dividing by 10 leaves quotient 0 and remainder 7.
	if z.DivSmall(10) != 7 {
		t.Errorf("remainder = %d, want 7", z.DivSmall(10))
	}
}

func TestSmallBigUintIsZero(t *testing.T) {
	z := ZeroBigUint()
	if !z.IsZero() {
		t.Errorf("zero value should report IsZero")
	}
	z.AddSmall(0)
	if !z.IsZero() {
		t.Errorf("adding zero should remain zero")
	}
	z.AddSmall(1)
	if z.IsZero() {
		t.Errorf("should no longer be zero")
	}
}

func TestSmallBigUintFromLEBytes(t *testing.T) {
	b := []byte{1, 0, 0, 0, 2, 0, 0, 0}
	z := FromLEBytes(b)
	// limbs = [1, 2]; value = 1 + 2*2^32
	if len(z.limbs) != 2 || z.limbs[0] != 1 || z.limbs[1] != 2 {
		t.Fatalf("limbs = %v, want [1 2]", z.limbs)
	}
}

func TestSmallBigUintMulByZeroEmpties(t *testing.T) {
	z := FromU64(42)
	z.MulSmall(0)
	if !z.IsZero() {
		t.Errorf("multiplying by zero should empty the limbs")
	}
}

func TestSmallBigUintRepeatedDivSmallExtractsDigits(t *testing.T) {
	// base-2 decomposition of 0b1011 (=11) should yield digits 1,1,0,1,...
	z := FromU64(11)
	want := []uint32{1, 1, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		got := z.DivSmall(2)
		if got != w {
			t.Errorf("digit %d: got %d, want %d", i, got, w)
		}
	}
	if !z.IsZero() {
		t.Errorf("expected zero after extracting all bits")
	}
}
