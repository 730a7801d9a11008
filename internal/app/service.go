// Package service runs the ingestion pipeline: extract both record sets,
// link them into the in-memory database, then serve inspect/query calls and
// result serialization. Every run is a one-shot synchronous batch.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	repository "github.com/kianm/neoscout/internal/adapters/repository"
	"github.com/kianm/neoscout/internal/domain/filter"
	"github.com/kianm/neoscout/internal/domain/model"
	"github.com/kianm/neoscout/internal/extract"
	"github.com/kianm/neoscout/internal/write"
	"github.com/kianm/neoscout/pkg/logger"
	"github.com/kianm/neoscout/pkg/metrics"
)

// Service wires the pipeline stages together.
type Service struct {
	fs      afero.Fs
	neoPath string
	cadPath string

	db      *repository.Database
	metrics *metrics.Manager
	logger  logger.Logger
	runID   string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFs sets the filesystem all reads and writes go through.
func WithFs(fs afero.Fs) Option {
	return func(s *Service) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithNEOPath sets the path of the NEO catalog CSV.
func WithNEOPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.neoPath = path
		}
	}
}

// WithCADPath sets the path of the close-approach JSON document.
func WithCADPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.cadPath = path
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service. Call Load before any read operation.
func New(opts ...Option) *Service {
	s := &Service{
		fs:      afero.NewOsFs(),
		neoPath: "data/neos.csv",
		cadPath: "data/cad.json",
		metrics: metrics.NewManager(),
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("pipeline")
	}
	return s
}

// RunID identifies this pipeline run in logs.
func (s *Service) RunID() string { return s.runID }

// Load extracts both source files and links them. It must complete before
// Query, Inspect* or the writers are used.
func (s *Service) Load(ctx context.Context) error {
	start := time.Now()
	neos, err := extract.LoadNEOs(s.fs, s.neoPath)
	if err != nil {
		return fmt.Errorf("load NEOs: %w", err)
	}
	approaches, err := extract.LoadApproaches(s.fs, s.cadPath)
	if err != nil {
		return fmt.Errorf("load close approaches: %w", err)
	}
	extractElapsed := time.Since(start)

	s.metrics.RecordNEOsExtracted(len(neos))
	s.metrics.RecordApproachesExtracted(len(approaches))
	s.metrics.ObserveExtractDuration(extractElapsed)

	linkStart := time.Now()
	s.db = repository.New(neos, approaches)
	linkElapsed := time.Since(linkStart)

	linked := s.db.LinkedCount()
	s.metrics.RecordLinkOutcome(linked, len(approaches)-linked)
	s.metrics.ObserveLinkDuration(linkElapsed)

	s.logger.Info(ctx, "datasets linked",
		logger.String("run_id", s.runID),
		logger.Int("neos", len(neos)),
		logger.Int("approaches", len(approaches)),
		logger.Int("linked", linked),
		logger.Int("unlinked", len(approaches)-linked),
		logger.Duration("extract_elapsed", extractElapsed),
		logger.Duration("link_elapsed", linkElapsed),
	)
	return nil
}

// Database exposes the linked lookup for read-only consumers.
func (s *Service) Database() *repository.Database {
	return s.db
}

// InspectByDesignation returns the NEO with the exact designation, or nil.
func (s *Service) InspectByDesignation(designation string) *model.NearEarthObject {
	return s.db.NEOByDesignation(designation)
}

// InspectByName returns the NEO with the exact IAU name, or nil.
func (s *Service) InspectByName(name string) *model.NearEarthObject {
	return s.db.NEOByName(name)
}

// Query returns the close approaches matching every predicate, in
// extraction order.
func (s *Service) Query(ctx context.Context, predicates ...filter.Predicate) []*model.CloseApproach {
	results := filter.Apply(s.db.Approaches(), predicates...)
	s.logger.Debug(ctx, "query evaluated",
		logger.String("run_id", s.runID),
		logger.Int("predicates", len(predicates)),
		logger.Int("matched", len(results)),
	)
	return results
}

// WriteResults serializes the results to path, picking the format from the
// file extension (.csv or .json).
func (s *Service) WriteResults(ctx context.Context, results []*model.CloseApproach, path string) error {
	start := time.Now()

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		err = write.ToCSV(s.fs, path, results)
	case ".json":
		err = write.ToJSON(s.fs, path, results)
	default:
		return fmt.Errorf("unsupported output extension %q (want .csv or .json)", ext)
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	s.metrics.RecordRowsWritten(len(results))
	s.metrics.ObserveWriteDuration(elapsed)
	s.logger.Info(ctx, "results written",
		logger.String("run_id", s.runID),
		logger.String("path", path),
		logger.Int("rows", len(results)),
		logger.Duration("write_elapsed", elapsed),
	)
	return nil
}
