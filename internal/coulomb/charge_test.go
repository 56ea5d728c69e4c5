package coulomb

import "testing"

func TestDefaultCharges(t *testing.T) {
	charges := DefaultCharges(2)

	if len(charges) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(charges))
	}
	if charges[0].Q != 1 || charges[0].X != -2 || charges[0].Y != 0 {
		t.Errorf("unexpected first charge: %+v", charges[0])
	}
	if charges[1].Q != -1 || charges[1].X != 2 || charges[1].Y != 0 {
		t.Errorf("unexpected second charge: %+v", charges[1])
	}
}

func TestDefaultChargesExtras(t *testing.T) {
	charges := DefaultCharges(5)

	if len(charges) != 5 {
		t.Fatalf("expected 5 charges, got %d", len(charges))
	}
	for i := 2; i < 5; i++ {
		c := charges[i]
		if c.Q != 1 || c.X != 0 || c.Y != 0 {
			t.Errorf("charge %d: expected unit charge at origin, got %+v", i, c)
		}
	}
}

func TestDefaultChargesCountClamp(t *testing.T) {
	if n := len(DefaultCharges(0)); n != MinCharges {
		t.Errorf("expected %d charges for count 0, got %d", MinCharges, n)
	}
	if n := len(DefaultCharges(99)); n != MaxCharges {
		t.Errorf("expected %d charges for count 99, got %d", MaxCharges, n)
	}
}

func TestChargeClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Charge
		want Charge
	}{
		{"in range", Charge{Q: 1.5, X: -2, Y: 3}, Charge{Q: 1.5, X: -2, Y: 3}},
		{"magnitude high", Charge{Q: 12, X: 0, Y: 0}, Charge{Q: 5, X: 0, Y: 0}},
		{"magnitude low", Charge{Q: -12, X: 0, Y: 0}, Charge{Q: -5, X: 0, Y: 0}},
		{"position out", Charge{Q: 1, X: 7, Y: -9}, Charge{Q: 1, X: 5, Y: -5}},
		{"boundary", Charge{Q: 5, X: -5, Y: 5}, Charge{Q: 5, X: -5, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamped()
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	charges := Normalize(nil)
	if len(charges) != DefaultCount {
		t.Fatalf("expected default dipole for empty input, got %d charges", len(charges))
	}
	if charges[0].X != -2 || charges[1].X != 2 {
		t.Errorf("expected dipole layout, got %+v", charges)
	}

	long := make([]Charge, 9)
	for i := range long {
		long[i] = Charge{Q: 20, X: 100, Y: -100}
	}
	charges = Normalize(long)
	if len(charges) != MaxCharges {
		t.Fatalf("expected truncation to %d, got %d", MaxCharges, len(charges))
	}
	for i, c := range charges {
		if c.Q != MaxQ || c.X != MaxXY || c.Y != MinXY {
			t.Errorf("charge %d not clamped: %+v", i, c)
		}
	}
}

func TestChargeSign(t *testing.T) {
	if s := (Charge{Q: 2}).Sign(); s != 1 {
		t.Errorf("expected sign 1, got %d", s)
	}
	if s := (Charge{Q: -0.5}).Sign(); s != -1 {
		t.Errorf("expected sign -1, got %d", s)
	}
	if s := (Charge{Q: 0}).Sign(); s != 0 {
		t.Errorf("expected sign 0, got %d", s)
	}
}

func TestChargeLabel(t *testing.T) {
	if l := (Charge{Q: 1}).Label(); l != "Q=1" {
		t.Errorf("expected Q=1, got %s", l)
	}
	if l := (Charge{Q: -2.5}).Label(); l != "Q=-2.5" {
		t.Errorf("expected Q=-2.5, got %s", l)
	}
}
