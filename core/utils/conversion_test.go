package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want float64
	}{
		{"Float", 12.5, 12.5},
		{"Int", 42, 42},
		{"NumericString", " 99.9 ", 99.9},
		{"BadString", "abc", 0},
		{"Nil", nil, 0},
		{"Bytes", []byte("7"), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat64(tt.val))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(3))
	assert.True(t, IsNumeric(3.14))
	assert.True(t, IsNumeric("42"))
	assert.True(t, IsNumeric("-1.5"))
	assert.False(t, IsNumeric("42 rooms"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric(nil))
	assert.False(t, IsNumeric(true))
}

func TestToTime(t *testing.T) {
	ref := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	t.Run("Passthrough", func(t *testing.T) {
		assert.Equal(t, ref, ToTime(ref))
	})

	t.Run("RFC3339", func(t *testing.T) {
		got := ToTime("2024-03-01T10:30:00Z")
		assert.True(t, got.Equal(ref))
	})

	t.Run("DateOnly", func(t *testing.T) {
		got := ToTime("2024-03-01")
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("UnixSeconds", func(t *testing.T) {
		got := ToTime(ref.Unix())
		assert.True(t, got.Equal(ref))
	})

	t.Run("Unparsable", func(t *testing.T) {
		assert.True(t, ToTime("not a date").IsZero())
		assert.True(t, ToTime(nil).IsZero())
	})

	t.Run("NilPointer", func(t *testing.T) {
		var p *time.Time
		assert.True(t, ToTime(p).IsZero())
	})
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "5", ToString(5))
	assert.Equal(t, "raw", ToString([]byte("raw")))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool([]byte("true")))
	assert.False(t, ToBool(false))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("yes"))
	assert.False(t, ToBool(""))
	assert.False(t, ToBool(nil))
}
