package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var payload struct {
		PublishedDate *Date `json:"publishedDate"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"publishedDate":"2019-08-01"}`), &payload))
	require.NotNil(t, payload.PublishedDate)
	assert.Equal(t, time.Date(2019, time.August, 1, 0, 0, 0, 0, time.UTC), payload.PublishedDate.Time)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"publishedDate":"2019-08-01"}`, string(out))
}

func TestDate_RejectsOtherFormats(t *testing.T) {
	for _, raw := range []string{`"01/08/2019"`, `"2019-8-1"`, `"2019-08-01T00:00:00Z"`, `20190801`, `"2019-02-30"`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(raw), &d), raw)
	}
}

func TestDate_Null(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	d := NewDate(time.Date(2020, time.March, 5, 23, 30, 0, 0, loc))

	assert.Equal(t, "2020-03-05", d.String())
	assert.Equal(t, time.UTC, d.Location())
}
