package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "date with time part", in: "2024-03-01T00:00:00", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date with non-midnight time", in: "2024-03-01T17:45:00", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "bare date", in: "2024-12-31", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDateTimeUTC(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "zone-less with fraction", in: "2024-03-02T04:15:31.123", want: time.Date(2024, 3, 2, 4, 15, 31, 123000000, time.UTC)},
		{name: "zone-less", in: "2024-03-02T04:15:31", want: time.Date(2024, 3, 2, 4, 15, 31, 0, time.UTC)},
		{name: "with offset", in: "2024-03-02T14:15:31+10:00", want: time.Date(2024, 3, 2, 4, 15, 31, 0, time.UTC)},
		{name: "zulu", in: "2024-03-02T04:15:31Z", want: time.Date(2024, 3, 2, 4, 15, 31, 0, time.UTC)},
		{name: "garbage", in: "03/02/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTimeUTC(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-03-01", FormatDate(time.Date(2024, 3, 1, 23, 59, 59, 999, time.UTC)))
}
