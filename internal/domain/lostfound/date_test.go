package lostfound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantNil bool
		wantErr bool
	}{
		{name: "plain date", raw: "2026-02-14", want: "2026-02-14"},
		{name: "timestamp from web client", raw: "2026-02-14T21:05:11.123Z", want: "2026-02-14"},
		{name: "offset timestamp keeps local day", raw: "2026-02-14T01:00:00+05:30", want: "2026-02-14"},
		{name: "empty", raw: " ", wantNil: true},
		{name: "garbage", raw: "14/02/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, d)
				return
			}
			assert.Equal(t, tt.want, *FormatDate(d))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusLost.Valid())
	assert.True(t, StatusFound.Valid())
	assert.True(t, StatusRecovered.Valid())
	assert.False(t, Status("lost").Valid())
}
