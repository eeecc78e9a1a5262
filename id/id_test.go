package id

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunIsSortable(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		r, err := NewRun()
		require.NoError(t, err)
		ids[i] = r.String()
	}
	assert.True(t, sort.StringsAreSorted(ids))
	assert.Len(t, ids[0], 26)
}

func TestGeneratorSameMillisecond(t *testing.T) {
	started := time.Date(2022, 3, 17, 9, 30, 0, 0, time.UTC)
	g := NewGenerator(func() time.Time { return started }, rand.New(rand.NewSource(1)))

	a, err := g.Next()
	require.NoError(t, err)
	b, err := g.Next()
	require.NoError(t, err)
	assert.Less(t, string(a), string(b))

	ts, err := b.Time()
	require.NoError(t, err)
	assert.Equal(t, started, ts)
}

func TestParseRunID(t *testing.T) {
	r, err := NewRun()
	require.NoError(t, err)

	got, err := ParseRunID(strings.ToLower(r.String()))
	require.NoError(t, err)
	assert.Equal(t, r, got)

	for _, s := range []string{"", "R1", "not-a-ulid", r.String() + "0"} {
		_, err := ParseRunID(s)
		assert.Error(t, err, s)
	}
}

func TestRunIDTime(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	r, err := NewRun()
	require.NoError(t, err)

	ts, err := r.Time()
	require.NoError(t, err)
	assert.True(t, ts.After(before))

	_, err = RunID("not-a-ulid").Time()
	assert.Error(t, err)
}
