package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PartialDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SignatureFile), []byte("sig"), 0o600))

	a := Load(dir)

	assert.False(t, a.Logo.Present())
	assert.Equal(t, "", a.Logo.DataURI())
	assert.True(t, a.Signature.Present())
	assert.Equal(t, "data:image/png;base64,c2ln", a.Signature.DataURI())
	assert.False(t, a.Watermark.Present())
}
