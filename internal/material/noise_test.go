package material

import "testing"

func TestValueNoiseDeterministic(t *testing.T) {
	a := ValueNoise(99, 3.7, -2.1)
	b := ValueNoise(99, 3.7, -2.1)
	if a != b {
		t.Errorf("same inputs gave %v and %v", a, b)
	}
}

func TestValueNoiseRange(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		for i := 0; i < 200; i++ {
			x := float64(i)*0.37 - 20
			y := float64(i)*0.91 - 30
			v := ValueNoise(seed, x, y)
			if v < 0 || v >= 1.0001 {
				t.Fatalf("ValueNoise(%d, %v, %v) = %v, out of range", seed, x, y, v)
			}
		}
	}
}

func TestValueNoiseSeedSensitive(t *testing.T) {
	same := 0
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.53
		if ValueNoise(1, x, x) == ValueNoise(2, x, x) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("seeds 1 and 2 agree at %d/50 samples; hash is too weak", same)
	}
}

func TestFBmRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := FBm(7, float64(i)*0.21, float64(i)*0.13, 4)
		if v < 0 || v > 1 {
			t.Fatalf("FBm out of range: %v", v)
		}
	}
	if FBm(7, 1, 1, 0) != 0 {
		t.Error("zero octaves should yield 0")
	}
}
