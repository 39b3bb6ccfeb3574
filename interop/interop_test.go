package interop

import (
	"math"
	"math/big"
	"testing"

	"github.com/db47h/lognum"
	"github.com/holiman/uint256"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func requireNear(t *testing.T, want, got lognum.LogValue) {
	t.Helper()
	require.Equal(t, want.Signbit(), got.Signbit(), "sign of %v, want %v", got, want)
	require.InDelta(t, want.LogMagnitude(), got.LogMagnitude(), 1e-9, "got %v, want %v", got, want)
}

func pow10Int(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

func TestFromBigInt(t *testing.T) {
	require.True(t, FromBigInt(nil).IsZero())
	require.True(t, FromBigInt(new(big.Int)).IsZero())
	requireNear(t, lognum.NewFloat64(12345), FromBigInt(big.NewInt(12345)))
	requireNear(t, lognum.New(false, 100), FromBigInt(pow10Int(100)))
	requireNear(t, lognum.New(true, 400), FromBigInt(new(big.Int).Neg(pow10Int(400))))
}

func TestFromBigFloat(t *testing.T) {
	require.True(t, FromBigFloat(nil).IsZero())
	z := FromBigFloat(new(big.Float).SetFloat64(math.Copysign(0, -1)))
	require.True(t, z.IsZero())
	require.True(t, z.Signbit())
	require.True(t, FromBigFloat(new(big.Float).SetInf(true)).IsInf())
	require.True(t, FromBigFloat(new(big.Float).SetInf(true)).Signbit())

	f := new(big.Float).SetMantExp(big.NewFloat(0.75), -5000)
	requireNear(t, lognum.New(false, math.Log10(0.75)-5000*math.Log10(2)), FromBigFloat(f))
}

func TestToBigFloat(t *testing.T) {
	for _, x := range []lognum.LogValue{
		lognum.NewFloat64(-2.5),
		lognum.New(false, 500),
		lognum.New(true, -500),
		lognum.New(false, 1e8),
	} {
		f, err := ToBigFloat(x)
		require.NoError(t, err)
		requireNear(t, x, FromBigFloat(f))
	}

	f, err := ToBigFloat(lognum.NegInf)
	require.NoError(t, err)
	require.True(t, f.IsInf())
	require.True(t, f.Signbit())

	f, err = ToBigFloat(lognum.NegZero)
	require.NoError(t, err)
	require.Zero(t, f.Sign())
	require.True(t, f.Signbit())

	_, err = ToBigFloat(lognum.NaN)
	require.ErrorIs(t, err, ErrNaN)
	_, err = ToBigFloat(lognum.New(false, 1e10))
	require.ErrorIs(t, err, ErrRange)
}

func TestToBigInt(t *testing.T) {
	b, err := ToBigInt(lognum.NewFloat64(12345.9))
	require.NoError(t, err)
	require.Equal(t, int64(12345), b.Int64())

	b, err = ToBigInt(lognum.NewFloat64(-12345.9))
	require.NoError(t, err)
	require.Equal(t, int64(-12345), b.Int64())

	b, err = ToBigInt(lognum.New(false, -3))
	require.NoError(t, err)
	require.Zero(t, b.Sign())

	b, err = ToBigInt(lognum.New(false, 400))
	require.NoError(t, err)
	requireNear(t, lognum.New(false, 400), FromBigInt(b))

	_, err = ToBigInt(lognum.Inf)
	require.ErrorIs(t, err, ErrRange)
	_, err = ToBigInt(lognum.NaN)
	require.ErrorIs(t, err, ErrNaN)
}

func TestDecimal(t *testing.T) {
	require.True(t, FromDecimal(decimal.Zero).IsZero())
	requireNear(t, lognum.NewFloat64(123.45), FromDecimal(decimal.RequireFromString("123.45")))
	requireNear(t, lognum.NewFloat64(-0.001), FromDecimal(decimal.RequireFromString("-0.001")))
	requireNear(t, lognum.New(false, 1000.69897000433602), FromDecimal(decimal.New(5, 1000)))

	d, err := ToDecimal(lognum.NewFloat64(123.45))
	require.NoError(t, err)
	require.True(t, d.Sub(decimal.RequireFromString("123.45")).Abs().LessThan(decimal.New(1, -10)), "got %s", d)

	d, err = ToDecimal(lognum.NewFloat64(-7))
	require.NoError(t, err)
	require.True(t, d.Sub(decimal.NewFromInt(-7)).Abs().LessThan(decimal.New(1, -12)), "got %s", d)

	d, err = ToDecimal(lognum.New(false, 1000))
	require.NoError(t, err)
	require.True(t, d.Equal(decimal.New(1, 1000)))

	d, err = ToDecimal(lognum.Zero)
	require.NoError(t, err)
	require.True(t, d.IsZero())

	_, err = ToDecimal(lognum.NaN)
	require.ErrorIs(t, err, ErrNaN)
	_, err = ToDecimal(lognum.Inf)
	require.ErrorIs(t, err, ErrRange)
	_, err = ToDecimal(lognum.New(false, 1e10))
	require.ErrorIs(t, err, ErrRange)

	for _, x := range []lognum.LogValue{lognum.Pi, lognum.New(true, -42.5), lognum.New(false, 123456.789)} {
		d, err := ToDecimal(x)
		require.NoError(t, err)
		requireNear(t, x, FromDecimal(d))
	}
}

func TestFixed(t *testing.T) {
	requireNear(t, lognum.NewFloat64(123.4567), FromFixed(fixed.NewS("123.4567")))
	requireNear(t, lognum.NewFloat64(-0.5), FromFixed(fixed.NewF(-0.5)))
	require.True(t, FromFixed(fixed.ZERO).IsZero())
	require.True(t, FromFixed(fixed.NaN).IsNaN())

	f, err := ToFixed(lognum.NewFloat64(2.5))
	require.NoError(t, err)
	require.True(t, f.Equal(fixed.NewF(2.5)), "got %s", f)

	f, err = ToFixed(lognum.New(false, -10))
	require.NoError(t, err)
	require.True(t, f.Equal(fixed.ZERO), "got %s", f)

	_, err = ToFixed(lognum.New(false, 12))
	require.ErrorIs(t, err, ErrRange)
	_, err = ToFixed(lognum.New(false, 400))
	require.ErrorIs(t, err, ErrRange)
	_, err = ToFixed(lognum.NaN)
	require.ErrorIs(t, err, ErrNaN)
}

func TestUint256(t *testing.T) {
	require.True(t, FromUint256(nil).IsZero())
	requireNear(t, lognum.NewFloat64(1000), FromUint256(uint256.NewInt(1000)))
	requireNear(t, lognum.New(false, 256*math.Log10(2)), FromUint256(new(uint256.Int).SetAllOne()))

	z, err := ToUint256(lognum.New(false, 3))
	require.NoError(t, err)
	require.Equal(t, uint64(1000), z.Uint64())

	z, err = ToUint256(lognum.New(false, 50))
	require.NoError(t, err)
	requireNear(t, lognum.New(false, 50), FromUint256(z))

	z, err = ToUint256(lognum.NewFloat64(-0.5))
	require.NoError(t, err)
	require.True(t, z.IsZero())

	_, err = ToUint256(lognum.NewFloat64(-5))
	require.ErrorIs(t, err, ErrRange)
	_, err = ToUint256(lognum.New(false, 77.1))
	require.ErrorIs(t, err, ErrRange)
	_, err = ToUint256(lognum.NaN)
	require.ErrorIs(t, err, ErrNaN)
}
