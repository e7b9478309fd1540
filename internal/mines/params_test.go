package mines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		valid  bool
	}{
		{"beginner", Beginner, true},
		{"intermediate", Intermediate, true},
		{"expert", Expert, true},
		{"no mines", Params{9, 9, 0}, true},
		{"full", Params{9, 9, 72}, true},
		{"wide", Params{9, 30, 99}, true},
		{"short", Params{8, 9, 10}, false},
		{"narrow", Params{9, 7, 10}, false},
		{"too many mines", Params{9, 9, 73}, false},
		{"negative mines", Params{9, 9, -1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var ce ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, test.params, ce.Params)
		})
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		seed string
		want *Params
	}{
		{"9:9:10", &Beginner},
		{"16:16:40", &Intermediate},
		{"24:30:99", &Params{24, 30, 99}},
		{"9:9", nil},
		{"", nil},
		{"a:b:c", nil},
	}

	for _, test := range tests {
		t.Run(test.seed, func(t *testing.T) {
			p, err := ParseSeed(test.seed)
			if test.want == nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *test.want, *p)
			assert.Equal(t, test.seed, p.Seed())
		})
	}
}

func TestPointInBounds(t *testing.T) {
	p := Params{Rows: 9, Cols: 12}
	assert.True(t, p.PointInBounds(0, 0))
	assert.True(t, p.PointInBounds(8, 11))
	assert.False(t, p.PointInBounds(9, 0))
	assert.False(t, p.PointInBounds(0, 12))
	assert.False(t, p.PointInBounds(-1, 3))
	assert.False(t, p.PointInBounds(3, -1))
}
