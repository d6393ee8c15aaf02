package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ReadFile(t *testing.T, path string) []byte {
	data, err := os.ReadFile(path)
	require.NoError(t, err, "read file %s", path)

	return data
}

func Assert(t *testing.T, expected interface{}, actual interface{}, name string) {
	assert.Equal(t, expected, actual, name)
}

func IsNil(t *testing.T, value interface{}, name string) {
	require.Nil(t, value, name)
}
