package math_test

import (
	"testing"

	"github.com/db47h/lognum"
	"github.com/db47h/lognum/math"
)

func TestSum(t *testing.T) {
	for _, d := range []struct {
		name string
		xs   []lognum.LogValue
		want lognum.LogValue
	}{
		{"empty", nil, lognum.Zero},
		{"one", []lognum.LogValue{f64(-3)}, f64(-3)},
		{"small ints", []lognum.LogValue{f64(1), f64(2), f64(3), f64(4)}, lognum.Ten},
		{"mixed signs", []lognum.LogValue{f64(10), f64(-4), f64(0.5)}, f64(6.5)},
		{"huge", []lognum.LogValue{lognum.New(false, 1000), lognum.New(false, 1000)}, lognum.New(false, 1000.3010299956639812)},
		{"inf", []lognum.LogValue{f64(1), lognum.Inf}, lognum.Inf},
	} {
		if z := math.Sum(d.xs...); !near(z, d.want, 1e-9) {
			t.Errorf("%s: Sum = %v; want %v", d.name, z, d.want)
		}
	}
	for _, xs := range [][]lognum.LogValue{
		{lognum.NaN, f64(1)},
		{f64(1), lognum.Inf, lognum.NegInf},
	} {
		if z := math.Sum(xs...); !z.IsNaN() {
			t.Errorf("Sum(%v) = %v; want NaN", xs, z)
		}
	}

	xs := []lognum.LogValue{f64(100), f64(1), f64(10)}
	_ = math.Sum(xs...)
	if !xs[0].Equal(f64(100)) || !xs[1].Equal(f64(1)) {
		t.Errorf("Sum modified its input: %v", xs)
	}
}

func TestProduct(t *testing.T) {
	if z := math.Product(); !z.Equal(lognum.One) {
		t.Errorf("Product() = %v; want 1", z)
	}
	if z := math.Product(f64(2), f64(3), f64(-4)); !near(z, f64(-24), 1e-12) {
		t.Errorf("Product(2, 3, -4) = %v; want -24", z)
	}
	if z := math.Product(lognum.New(false, 1e300), lognum.New(false, 1e300)); !near(z, lognum.New(false, 2e300), 1e-12) {
		t.Errorf("Product(e1e300, e1e300) = %v", z)
	}
}

func TestMean(t *testing.T) {
	if z := math.Mean(); !z.IsNaN() {
		t.Errorf("Mean() = %v; want NaN", z)
	}
	if z := math.Mean(f64(1), f64(2), f64(3), f64(4)); !near(z, f64(2.5), 1e-12) {
		t.Errorf("Mean(1, 2, 3, 4) = %v; want 2.5", z)
	}
	if z := math.GeoMean(f64(2), f64(8)); !near(z, f64(4), 1e-12) {
		t.Errorf("GeoMean(2, 8) = %v; want 4", z)
	}
	if z := math.GeoMean(f64(-2), f64(-8)); !near(z, f64(4), 1e-12) {
		t.Errorf("GeoMean(-2, -8) = %v; want 4", z)
	}
	for _, xs := range [][]lognum.LogValue{nil, {f64(-2), f64(8)}} {
		if z := math.GeoMean(xs...); !z.IsNaN() {
			t.Errorf("GeoMean(%v) = %v; want NaN", xs, z)
		}
	}
}
