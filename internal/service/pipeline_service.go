package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/straye-as/pipeline-api/internal/domain"
	"github.com/straye-as/pipeline-api/internal/mapper"
	"github.com/straye-as/pipeline-api/internal/pipeline"
	"github.com/straye-as/pipeline-api/internal/repository"
	"go.uber.org/zap"
)

// PipelineService serves the derived views of the board: status columns and
// company summaries.
type PipelineService struct {
	board    *pipeline.Board
	leadRepo *repository.LeadRepository
	logger   *zap.Logger
}

func NewPipelineService(board *pipeline.Board, leadRepo *repository.LeadRepository, logger *zap.Logger) *PipelineService {
	return &PipelineService{
		board:    board,
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// RefreshBoard reloads every lead from the store into the board
func (s *PipelineService) RefreshBoard(ctx context.Context) (int, error) {
	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load leads: %w", err)
	}
	s.board.Replace(leads)

	s.logger.Debug("pipeline board refreshed", zap.Int("leads", len(leads)))
	return len(leads), nil
}

// Board partitions the board into one column per lead status
func (s *PipelineService) Board(ctx context.Context) domain.PipelineBoardDTO {
	return mapper.ToPipelineBoardDTO(pipeline.PartitionColumns(s.board.Leads()))
}

// CompanyFilters narrows the company list
type CompanyFilters struct {
	Status *domain.CompanyStatus
	Search string
}

// Companies groups the board by company, most recently active first
func (s *PipelineService) Companies(ctx context.Context, filters CompanyFilters) []domain.CompanyDTO {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	dtos := make([]domain.CompanyDTO, 0)
	for _, summary := range pipeline.GroupCompanies(s.board.Leads()) {
		if filters.Status != nil && summary.GeneralStatus != *filters.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(summary.Key), search) {
			continue
		}
		dtos = append(dtos, mapper.ToCompanyDTO(&summary, false))
	}
	return dtos
}

// Company returns one company summary with its leads
func (s *PipelineService) Company(ctx context.Context, key string) (*domain.CompanyDTO, error) {
	summary, ok := pipeline.FindCompany(s.board.Leads(), key)
	if !ok {
		return nil, ErrCompanyNotFound
	}

	dto := mapper.ToCompanyDTO(&summary, true)
	return &dto, nil
}

// StatusCatalog returns the labels and colors of every pipeline enumeration
func (s *PipelineService) StatusCatalog() domain.StatusCatalogDTO {
	return mapper.ToStatusCatalogDTO()
}

// Snapshot captures the board and company summaries at now
func (s *PipelineService) Snapshot(ctx context.Context, now time.Time) domain.PipelineSnapshotDTO {
	leads := s.board.Leads()

	companies := make([]domain.CompanyDTO, 0)
	for _, summary := range pipeline.GroupCompanies(leads) {
		companies = append(companies, mapper.ToCompanyDTO(&summary, false))
	}

	return domain.PipelineSnapshotDTO{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Board:       mapper.ToPipelineBoardDTO(pipeline.PartitionColumns(leads)),
		Companies:   companies,
	}
}
