package frcsv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "10,00", want: 1000},
		{input: "1.234,56", want: 123456},
		{input: "-588,74", want: -58874},
		{input: " 3,50 ", want: 350},
		{input: "42", want: 4200},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRate(t *testing.T) {
	got, err := ParseRate("5,5")
	require.NoError(t, err)
	assert.Equal(t, "5.5", got.String())

	got, err = ParseRate("20 %")
	require.NoError(t, err)
	assert.Equal(t, "20", got.String())

	_, err = ParseRate("dix")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"15/01/2026", "15-01-2026", "2026-01-15"} {
		got, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.True(t, got.Equal(want), input)
	}

	_, err := ParseDate("01/15/2026")
	assert.Error(t, err)
}
