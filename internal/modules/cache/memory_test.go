package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type clip struct {
	ID string
}

func TestManager(t *testing.T) {
	m := NewManager[*clip](time.Minute)

	v, err := m.GetValue("missing")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, m.Set("a", &clip{ID: "a"}))
	v, err = m.GetValue("a")
	require.NoError(t, err)
	require.Equal(t, "a", v.ID)

	require.NoError(t, m.Delete("a"))
	v, err = m.GetValue("a")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestManagerExpiration(t *testing.T) {
	m := NewManager[string](time.Minute)
	require.NoError(t, m.SetWithExpiration("k", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)
	v, err := m.GetValue("k")
	require.NoError(t, err)
	require.Empty(t, v)
}
