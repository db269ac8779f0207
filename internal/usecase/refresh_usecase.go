package usecase

import (
	"context"
	"time"

	"job-compass/internal/corpus"
	"job-compass/internal/recommend"
	"job-compass/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SnapshotStore extends SnapshotSource with the atomic swap a refresh
// performs once the new snapshot is fully built.
type SnapshotStore interface {
	SnapshotSource
	Swap(*corpus.Snapshot)
}

type RefreshResult struct {
	RunID          uuid.UUID `json:"run_id"`
	PostingCount   int       `json:"posting_count"`
	VocabularySize int       `json:"vocabulary_size"`
	BuiltAt        time.Time `json:"built_at"`
}

type CorpusRefreshUsecase interface {
	Refresh(ctx context.Context) (RefreshResult, error)
}

type CorpusRefresh struct {
	postings  repository.PostingRepository
	snapshots SnapshotStore
	cache     ResponseCache
	tokenizer recommend.Tokenizer
	logger    *zap.Logger
}

func NewCorpusRefreshUsecase(postings repository.PostingRepository, snapshots SnapshotStore, cache ResponseCache, tokenizer recommend.Tokenizer, logger *zap.Logger) *CorpusRefresh {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CorpusRefresh{
		postings:  postings,
		snapshots: snapshots,
		cache:     cache,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// Refresh reloads every posting, rebuilds vocabulary and vectors, and swaps
// the new snapshot in whole. The old snapshot keeps serving readers until the
// swap; a failed load leaves it untouched. Zero rows is a valid outcome — an
// empty snapshot serves empty recommendation lists, not errors.
func (u *CorpusRefresh) Refresh(ctx context.Context) (RefreshResult, error) {
	runID := uuid.New()
	start := time.Now()

	rows, err := u.postings.ListPostings(ctx)
	if err != nil {
		u.logger.Error("corpus load failed",
			zap.String("run_id", runID.String()),
			zap.Error(err),
		)
		return RefreshResult{}, ErrInternal
	}

	snap := corpus.Build(u.tokenizer, rows)
	u.snapshots.Swap(snap)

	if u.cache != nil {
		if err := u.cache.InvalidateCorpus(ctx); err != nil {
			u.logger.Warn("corpus cache invalidation failed",
				zap.String("run_id", runID.String()),
				zap.Error(err),
			)
		}
	}

	u.logger.Info("corpus snapshot swapped",
		zap.String("run_id", runID.String()),
		zap.Int("postings", len(snap.Postings)),
		zap.Int("vocabulary", len(snap.Model.Vocabulary)),
		zap.Duration("took", time.Since(start)),
	)

	return RefreshResult{
		RunID:          runID,
		PostingCount:   len(snap.Postings),
		VocabularySize: len(snap.Model.Vocabulary),
		BuiltAt:        snap.BuiltAt,
	}, nil
}
