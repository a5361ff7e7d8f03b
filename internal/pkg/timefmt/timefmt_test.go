//go:build unit

package timefmt_test

import (
	"encoding/json"
	"testing"
	"time"

	"shelter-scheduler/internal/pkg/timefmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeJSON(t *testing.T) {
	t.Run("round trips minute precision", func(t *testing.T) {
		in := timefmt.NewDateTime(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))

		b, err := json.Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, `"2025-03-14 10:00"`, string(b))

		var out timefmt.DateTime
		require.NoError(t, json.Unmarshal(b, &out))
		assert.True(t, in.Equal(out.Time))
	})

	t.Run("rejects RFC3339 input", func(t *testing.T) {
		var out timefmt.DateTime
		err := json.Unmarshal([]byte(`"2025-03-14T10:00:00Z"`), &out)
		assert.Error(t, err)
	})

	t.Run("null leaves value untouched", func(t *testing.T) {
		var out timefmt.DateTime
		require.NoError(t, json.Unmarshal([]byte(`null`), &out))
		assert.True(t, out.IsZero())
	})
}

func TestDateJSON(t *testing.T) {
	var d timefmt.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14"`), &d))
	assert.Equal(t, "2025-03-14", d.String())

	err := json.Unmarshal([]byte(`"14/03/2025"`), &d)
	assert.Error(t, err)
}
