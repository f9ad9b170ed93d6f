package libcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage_Filename(t *testing.T) {
	assert.Equal(t, "libchromiumcontent.zip", PackageShared.Filename())
	assert.Equal(t, "libchromiumcontent-static.zip", PackageStatic.Filename())
	assert.Equal(t, []Package{PackageShared, PackageStatic}, Packages)
	assert.Equal(t, "static", PackageStatic.String())
}
