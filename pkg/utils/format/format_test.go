package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInteger(t *testing.T) {
	require.Equal(t, "124", Integer("fr", 124))
	require.Equal(t, "1 240", Integer("fr", 1240))
	require.Equal(t, "1,240", Integer("en", 1240))
	require.Equal(t, "1,240", Integer("de", 1240))
	require.Equal(t, "8", Integer("en", 8))
}

func TestPercent(t *testing.T) {
	require.Equal(t, "68%", Percent("en", 0.68))
	require.Equal(t, "68 %", Percent("fr", 0.68))
	require.Equal(t, "0%", Percent("en", 0))
	require.Equal(t, "100%", Percent("en", 0.999))
}
