package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
	"irpfdecl/internal/port"
)

// GenerateInput is the DTO for a declaration request.
type GenerateInput struct {
	Name       string
	NationalID string
	Email      string
}

// DeclarationService runs the lookup → classify → aggregate → render pipeline.
type DeclarationService interface {
	Generate(ctx context.Context, input GenerateInput) (*domain.Outcome, error)
	SourceConfigured() bool
}

type declarationService struct {
	source   port.RowSource
	lookup   LookupService
	renderer port.DeclarationRenderer
}

// NewDeclarationService creates a DeclarationService.
func NewDeclarationService(source port.RowSource, renderer port.DeclarationRenderer) DeclarationService {
	return &declarationService{
		source:   source,
		lookup:   NewLookupService(source),
		renderer: renderer,
	}
}

func (s *declarationService) SourceConfigured() bool {
	return s.source.Configured()
}

func (s *declarationService) Generate(ctx context.Context, input GenerateInput) (*domain.Outcome, error) {
	key, err := domain.NewLookupKey(input.NationalID, input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	result, err := s.lookup.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}

	switch kind := Classify(result); kind {
	case domain.OutcomeNotFound:
		log.Printf("[declaration] student %s not found", format.MaskCPF(input.NationalID))
		return &domain.Outcome{Kind: kind}, nil
	case domain.OutcomeNonPDFGroup:
		log.Printf("[declaration] group %q is on the tutorial track", result.GroupID)
		return &domain.Outcome{Kind: kind, GroupID: result.GroupID}, nil
	case domain.OutcomeNoEligiblePayments:
		log.Printf("[declaration] no paid installments in %d for group %q", domain.TargetYear, result.GroupID)
		return &domain.Outcome{Kind: kind, GroupID: result.GroupID}, nil
	}

	data := BuildDeclarationData(input.Name, input.NationalID, result)
	log.Printf("[declaration] %d installments, total %s, group %q", len(result.Payments), data.Total, data.GroupID)

	pdf, err := s.renderer.Render(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	return &domain.Outcome{
		Kind:             domain.OutcomeDeclaration,
		GroupID:          result.GroupID,
		PDF:              pdf,
		Filename:         format.DeclarationFilename(input.Name, time.Now()),
		InstallmentCount: len(result.Payments),
		Total:            data.Total,
		Data:             data,
	}, nil
}

// BuildDeclarationData prepares template data for an eligible student. The
// document carries the requester's name and CPF as submitted.
func BuildDeclarationData(name, nationalID string, result *domain.StudentLookupResult) *domain.DeclarationData {
	agg := Aggregate(result.Payments)
	return &domain.DeclarationData{
		HolderName:   name,
		NationalID:   format.NationalID(nationalID),
		GroupID:      result.GroupID,
		Year:         domain.TargetYear,
		Total:        format.Currency(agg.Total),
		TotalAmount:  agg.Total,
		Installments: agg.Installments,
	}
}
