// Package app assembles the declaration pipeline from configuration.
package app

import (
	"fmt"
	"log"

	"irpfdecl/internal/assets"
	"irpfdecl/internal/config"
	"irpfdecl/internal/port"
	"irpfdecl/internal/render/chrome"
	"irpfdecl/internal/render/htmlpdf"
	"irpfdecl/internal/render/maroto"
	"irpfdecl/internal/service"
	"irpfdecl/internal/sheets"
	s3storage "irpfdecl/internal/storage/s3"
	"irpfdecl/internal/xlsx"
)

// NewRowSource returns the RowSource selected by cfg.Source.Provider.
func NewRowSource(cfg *config.Config) (port.RowSource, error) {
	switch cfg.Source.Provider {
	case config.SourceSheets:
		return sheets.NewSheetsSource(&cfg.Sheets), nil
	case config.SourceXLSX:
		return xlsx.NewFileSource(cfg.XLSX.Path, cfg.XLSX.Sheet), nil
	case config.SourceS3:
		client, err := s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		return xlsx.NewObjectSource(client, cfg.S3.Bucket, cfg.S3.Key, cfg.XLSX.Sheet), nil
	}
	return nil, fmt.Errorf("unknown source provider %q", cfg.Source.Provider)
}

// NewRenderer returns the DeclarationRenderer selected by cfg.Render.Engine.
func NewRenderer(cfg *config.Config) (port.DeclarationRenderer, error) {
	images := assets.Load(cfg.Assets.Dir)
	loc := cfg.Declaration.Location()

	switch cfg.Render.Engine {
	case config.EngineChrome:
		engine := chrome.NewEngine(cfg.Render.ChromePath, cfg.Render.Timeout)
		return htmlpdf.NewRenderer(engine, images, cfg.Render.MarginMM, loc), nil
	case config.EngineMaroto:
		return maroto.NewRenderer(images, cfg.Render.MarginMM, loc), nil
	}
	return nil, fmt.Errorf("unknown render engine %q", cfg.Render.Engine)
}

// NewDeclarationService wires the row source and renderer into the pipeline.
func NewDeclarationService(cfg *config.Config) (service.DeclarationService, error) {
	source, err := NewRowSource(cfg)
	if err != nil {
		return nil, err
	}
	renderer, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[app] source=%s engine=%s configured=%t", cfg.Source.Provider, cfg.Render.Engine, source.Configured())
	return service.NewDeclarationService(source, renderer), nil
}
