package version_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/apistub/version"
)

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	info := version.Info{
		Version:   "v1.2.0",
		Revision:  "abc123-dirty",
		GoVersion: "go1.25.0",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "apistub v1.2.0 (rev abc123-dirty, go1.25.0 linux/amd64)", info.String())
	assert.True(t, strings.HasPrefix(version.Get().String(), "apistub "))
}
