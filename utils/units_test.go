package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreesToRadians(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected float64
	}{
		{name: "zero", deg: 0, expected: 0},
		{name: "positive latitude", deg: 10, expected: 0.1745329251},
		{name: "negative longitude", deg: -122.5, expected: -2.138028332475},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DegreesToRadians(tt.deg), 1e-12)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected string
	}{
		{name: "zero", in: 0, expected: "0"},
		{name: "integer valued", in: 6, expected: "6"},
		{name: "fractional seconds", in: 1.5, expected: "1.5"},
		{name: "negative", in: -12.25, expected: "-12.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.in))
		})
	}
}
