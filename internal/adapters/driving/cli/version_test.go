package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	oldVersion := version
	SetVersion("1.2.3")
	defer func() { version = oldVersion }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "minutes version 1.2.3")
}

func TestSetVersion_IgnoresEmpty(t *testing.T) {
	oldVersion := version
	defer func() { version = oldVersion }()

	SetVersion("")
	assert.Equal(t, oldVersion, version)
}
