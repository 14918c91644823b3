package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeframeDays(t *testing.T) {
	tests := []struct {
		name      string
		timeframe string
		want      int
		wantErr   bool
	}{
		{name: "seven days", timeframe: "7d", want: 7},
		{name: "thirty days", timeframe: "30d", want: 30},
		{name: "single day", timeframe: "1d", want: 1},
		{name: "missing suffix", timeframe: "7", wantErr: true},
		{name: "non numeric", timeframe: "xd", wantErr: true},
		{name: "zero days", timeframe: "0d", wantErr: true},
		{name: "negative days", timeframe: "-3d", wantErr: true},
		{name: "empty", timeframe: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeframeDays(tt.timeframe)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
