package fixed_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/calebcase/q1620/fixed"
	"github.com/calebcase/q1620/integer"
	"github.com/calebcase/q1620/token"
)

func TestFields(t *testing.T) {
	width := 0
	for _, f := range fixed.Fields {
		width += f.Width()
	}
	require.Equal(t, integer.Bits, width)

	require.Equal(t, fixed.IntegerBits, fixed.Integer.Width())
	require.Equal(t, fixed.FractionBits, fixed.Fraction.Width())
	require.Equal(t, 4, fixed.Padding.Width())

	// Fields must not overlap.
	var seen uint64
	for _, f := range fixed.Fields {
		bits := f.Mask << f.Shift
		require.Zero(t, seen&bits, f.Name)
		seen |= bits
	}
	require.Equal(t, integer.Max, seen)

	raw := fixed.Integer.Insert(0, 0x1_FFFF)
	require.Equal(t, uint64(0xFFFF)<<20, raw)
	require.Equal(t, uint64(0xFFFF), fixed.Integer.Extract(raw))
	require.Zero(t, fixed.Fraction.Extract(raw))
}

func TestFromRaw(t *testing.T) {
	type TC struct {
		Raw   uint64
		Block fixed.Block
		Value float64
		Text  string
		Mark  error
	}

	tcs := []TC{
		{
			Raw:   0x00_0000_0000,
			Block: fixed.Block{},
			Value: 0,
			Text:  "0.000000",
			Mark:  oops.New("unexpected"),
		},
		{
			Raw:   0x00_00A0_0000,
			Block: fixed.Block{Integer: 10},
			Value: 10,
			Text:  "10.000000",
			Mark:  oops.New("unexpected"),
		},
		{
			Raw:   0x00_0000_0001,
			Block: fixed.Block{Fraction: 1},
			Value: 1.0 / 1048576,
			Text:  "0.000001",
			Mark:  oops.New("unexpected"),
		},
		{
			Raw:   0x00_00A8_0000,
			Block: fixed.Block{Integer: 10, Fraction: 0x8_0000},
			Value: 10.5,
			Text:  "10.500000",
			Mark:  oops.New("unexpected"),
		},
		{
			Raw:   0x0F_FFFF_FFFF,
			Block: fixed.Block{Integer: 0xFFFF, Fraction: 0xF_FFFF},
			Value: 65535 + 1048575.0/1048576,
			Text:  "65535.999999",
			Mark:  oops.New("unexpected"),
		},
		{
			Raw:   0xFF_FFFF_FFFF,
			Block: fixed.Block{Padding: 0xF, Integer: 0xFFFF, Fraction: 0xF_FFFF},
			Value: 65535 + 1048575.0/1048576,
			Text:  "65535.999999",
			Mark:  oops.New("unexpected"),
		},
		{
			Raw:   0x50_00A0_0000,
			Block: fixed.Block{Padding: 0x5, Integer: 10},
			Value: 10,
			Text:  "10.000000",
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%#x", tc.Raw), func(t *testing.T) {
			b := fixed.FromRaw(tc.Raw)
			require.Equal(t, tc.Block, b, tc.Mark)
			require.Equal(t, tc.Raw, b.Raw(), tc.Mark)
			require.Equal(t, tc.Value, b.Float64(), tc.Mark)
			require.Equal(t, tc.Text, b.String(), tc.Mark)
		})
	}
}

func TestFormula(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		raw := r.Uint64() & integer.Max

		want := float64((raw>>20)&0xFFFF) + float64(raw&0xFFFFF)/1048576.0
		require.Equal(t, want, fixed.FromRaw(raw).Float64(), "raw=%#x", raw)
	}
}

func TestFromFloat64(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		for _, f := range []float64{0, 1, 10, 10.5, 0.25, 65535, 65535 + 1048575.0/1048576} {
			b, err := fixed.FromFloat64(f)
			require.NoError(t, err)
			require.Zero(t, b.Padding)
			require.Equal(t, f, b.Float64())
		}
	})

	t.Run("rounds to nearest step", func(t *testing.T) {
		b, err := fixed.FromFloat64(math.Sqrt(2))
		require.NoError(t, err)
		require.InDelta(t, math.Sqrt(2), b.Float64(), 1.0/(2*fixed.Scale))
	})

	t.Run("out of range", func(t *testing.T) {
		for _, f := range []float64{-1, -0.0000001, 65536, 65535.9999999, math.Inf(1), math.NaN()} {
			_, err := fixed.FromFloat64(f)
			require.Error(t, err, "%v", f)
			require.True(t, fixed.Error.Has(err))
		}
	})
}

func TestText(t *testing.T) {
	type TC struct {
		Input string
		Block fixed.Block
		Text  string
		Err   error
		Mark  error
	}

	tcs := []TC{
		{
			Input: "00 00 A0 00 00",
			Block: fixed.Block{Integer: 10},
			Text:  "0000A00000",
			Mark:  oops.New("unexpected"),
		},
		{
			Input: "0xff 0xff 0xff 0xff 0xff",
			Block: fixed.Block{Padding: 0xF, Integer: 0xFFFF, Fraction: 0xF_FFFF},
			Text:  "FFFFFFFFFF",
			Mark:  oops.New("unexpected"),
		},
		{
			Input: "00 00 A0 00",
			Err:   token.ErrInvalidLength,
			Mark:  oops.New("unexpected"),
		},
		{
			Input: "GG 00 A0 00 00",
			Err:   token.ErrInvalidHexDigits,
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			b := fixed.Block{}
			err := b.UnmarshalText([]byte(tc.Input))
			if tc.Err != nil {
				require.True(t, errors.Is(err, tc.Err), tc.Mark)

				return
			}
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Block, b, tc.Mark)

			text, err := b.MarshalText()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Text, string(text), tc.Mark)
		})
	}
}

func TestBinary(t *testing.T) {
	b := fixed.Block{}
	require.NoError(t, b.UnmarshalBinary([]byte{0x00, 0x00, 0xA8, 0x00, 0x00}))
	require.Equal(t, 10.5, b.Float64())

	data, err := b.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0xA8, 0x00, 0x00}, data)

	err = b.UnmarshalBinary([]byte{0x00})
	require.Error(t, err)
	require.True(t, integer.Error.Has(err))
}
