package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	original, originalCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = original, originalCommit })

	Version, Commit = "v0.3.0", "none"
	assert.Equal(t, "v0.3.0", String())

	Commit = "a1b2c3d"
	assert.Equal(t, "v0.3.0 (a1b2c3d)", String())
}
