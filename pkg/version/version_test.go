package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	defer func(v, c string) { Version, GitCommit = v, c }(Version, GitCommit)

	Version, GitCommit = "1.4.0", "unknown"
	assert.Equal(t, "1.4.0", GetVersionString())

	GitCommit = "abc123"
	assert.Equal(t, "1.4.0 (abc123)", GetVersionString())

	GitCommit = "0123456789abcdef"
	assert.Equal(t, "1.4.0 (0123456)", GetVersionString())
}
