package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/offermart/marketplace-backend/internal/data/repos/catalog"
	"github.com/offermart/marketplace-backend/internal/pkg/logger"
)

// CampaignStatsService keeps live impression/click counters in Redis and
// periodically folds them into the campaign row. CTR reads combine the
// persisted totals with whatever is still buffered.
type CampaignStatsService interface {
	RecordImpression(ctx context.Context, campaignID uuid.UUID) error
	RecordClick(ctx context.Context, campaignID uuid.UUID) error
	CTR(ctx context.Context, campaignID uuid.UUID) (float64, error)
	Flush(ctx context.Context, campaignID uuid.UUID) error
}

type campaignStatsService struct {
	log  *logger.Logger
	rdb  *goredis.Client
	repo catalog.CampaignRepo
}

func NewCampaignStatsService(baseLog *logger.Logger, rdb *goredis.Client, repo catalog.CampaignRepo) CampaignStatsService {
	return &campaignStatsService{
		log:  baseLog.With("service", "CampaignStatsService"),
		rdb:  rdb,
		repo: repo,
	}
}

func impressionKey(id uuid.UUID) string { return fmt.Sprintf("campaign:%s:impressions", id) }
func clickKey(id uuid.UUID) string      { return fmt.Sprintf("campaign:%s:clicks", id) }

func (s *campaignStatsService) RecordImpression(ctx context.Context, campaignID uuid.UUID) error {
	return s.rdb.Incr(ctx, impressionKey(campaignID)).Err()
}

func (s *campaignStatsService) RecordClick(ctx context.Context, campaignID uuid.UUID) error {
	return s.rdb.Incr(ctx, clickKey(campaignID)).Err()
}

func (s *campaignStatsService) CTR(ctx context.Context, campaignID uuid.UUID) (float64, error) {
	campaign, err := s.repo.GetByID(ctx, nil, campaignID)
	if err != nil {
		return 0, err
	}

	buffered := func(key string) int64 {
		v, err := s.rdb.Get(ctx, key).Int64()
		if err != nil && err != goredis.Nil {
			s.log.Warn("Stats counter read failed", "key", key, "error", err)
		}
		return v
	}

	impressions := campaign.Impressions + buffered(impressionKey(campaignID))
	clicks := campaign.Clicks + buffered(clickKey(campaignID))
	if impressions == 0 {
		return 0, nil
	}
	return float64(clicks) / float64(impressions), nil
}

func (s *campaignStatsService) Flush(ctx context.Context, campaignID uuid.UUID) error {
	impressions, err := s.rdb.GetDel(ctx, impressionKey(campaignID)).Int64()
	if err != nil && err != goredis.Nil {
		return err
	}
	clicks, err := s.rdb.GetDel(ctx, clickKey(campaignID)).Int64()
	if err != nil && err != goredis.Nil {
		return err
	}
	if impressions == 0 && clicks == 0 {
		return nil
	}
	if _, err := s.repo.AddStats(ctx, nil, campaignID, impressions, clicks); err != nil {
		s.log.Error("Stats flush failed", "campaign_id", campaignID, "error", err)
		return err
	}
	return nil
}
