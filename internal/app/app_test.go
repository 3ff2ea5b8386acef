package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irpfdecl/internal/config"
	"irpfdecl/internal/render/htmlpdf"
	"irpfdecl/internal/render/maroto"
)

func baseConfig() *config.Config {
	return &config.Config{
		Source:      config.SourceConfig{Provider: config.SourceXLSX},
		XLSX:        config.XLSXConfig{Path: "testdata/none.xlsx"},
		Render:      config.RenderConfig{Engine: config.EngineChrome, MarginMM: 15},
		Assets:      config.AssetsConfig{Dir: "testdata"},
		Declaration: config.DeclarationConfig{Timezone: "UTC"},
	}
}

func TestNewRowSource_Providers(t *testing.T) {
	cfg := baseConfig()

	src, err := NewRowSource(cfg)
	require.NoError(t, err)
	assert.True(t, src.Configured())

	cfg.Source.Provider = config.SourceSheets
	src, err = NewRowSource(cfg)
	require.NoError(t, err)
	assert.False(t, src.Configured())

	cfg.Source.Provider = "ftp"
	_, err = NewRowSource(cfg)
	assert.Error(t, err)
}

func TestNewRenderer_Engines(t *testing.T) {
	cfg := baseConfig()

	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &htmlpdf.Renderer{}, r)

	cfg.Render.Engine = config.EngineMaroto
	r, err = NewRenderer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &maroto.Renderer{}, r)

	cfg.Render.Engine = "wkhtmltopdf"
	_, err = NewRenderer(cfg)
	assert.Error(t, err)
}

func TestNewDeclarationService(t *testing.T) {
	svc, err := NewDeclarationService(baseConfig())

	require.NoError(t, err)
	assert.True(t, svc.SourceConfigured())
}
