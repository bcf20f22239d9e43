package uuid

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID_TimeOrdered(t *testing.T) {
	gen := New()

	ids := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		ids = append(ids, gen.NewUUID())
	}

	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	}
	assert.True(t, sort.StringsAreSorted(ids))
}
