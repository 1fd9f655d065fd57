package scripts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/generator"
	"github.com/promoforge/adscript/internal/store"
	"github.com/promoforge/adscript/internal/utils"
)

// ErrNoHistory is returned when history is requested but no store is
// configured.
var ErrNoHistory = errors.New("script history store is not configured")

// Service runs the generation flow and, when a store is configured, records
// each result.
type Service struct {
	flow  generator.Flow
	store *store.Client // nil when DATABASE_URL is unset
	model string
}

func NewService(flow generator.Flow, st *store.Client, model string) *Service {
	return &Service{flow: flow, store: st, model: model}
}

func (s *Service) Generate(ctx context.Context, newsText string) (*GenerateResponse, error) {
	res, err := s.flow.Run(ctx, generator.Input{NewsText: newsText})
	if err != nil {
		return nil, err
	}

	resp := &GenerateResponse{
		ID:          uuid.NewString(),
		Headline:    res.Script.Headline,
		VideoScript: res.Script.VideoScript,
		Model:       s.model,
	}

	if s.store != nil {
		rec := store.Record{
			ID:          resp.ID,
			NewsText:    newsText,
			Headline:    resp.Headline,
			VideoScript: resp.VideoScript,
			Model:       s.model,
			CreatedAt:   time.Now().UTC(),
		}
		// History is best-effort; a storage hiccup must not fail the request.
		if err := s.store.Save(ctx, rec); err != nil {
			utils.Zlog.Error("Failed to store generated script",
				zap.String("id", resp.ID),
				zap.Error(err))
		}
	}

	return resp, nil
}

func (s *Service) Recent(ctx context.Context, limit int) (*HistoryResponse, error) {
	if s.store == nil {
		return nil, ErrNoHistory
	}

	records, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := &HistoryResponse{Scripts: make([]HistoryItem, 0, len(records))}
	for _, rec := range records {
		resp.Scripts = append(resp.Scripts, HistoryItem{
			ID:          rec.ID,
			Headline:    rec.Headline,
			VideoScript: rec.VideoScript,
			Model:       rec.Model,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return resp, nil
}
