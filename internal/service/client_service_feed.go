package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-park-audit/internal/adapter"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/models"
)

type clientFeedService struct {
	queue   store.LocalQueueRepository
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientFeedService(queue store.LocalQueueRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientFeedService {
	return &clientFeedService{queue: queue, adapter: serverAdapter, logger: log}
}

// MergedFeed implements ClientFeedService. Server entries win over local rows
// with the same local id: a record that was acknowledged but not yet marked
// synced locally would otherwise show up twice.
func (s *clientFeedService) MergedFeed(ctx context.Context, filter models.FeedFilter) ([]models.MergedFeedEntry, error) {
	pending, err := s.queue.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending records for feed: %w", err)
	}

	confirmed, err := s.adapter.ListEntries(ctx, models.EntryFilter{Zone: filter.Zone})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientFeedService.MergedFeed").
			Msg("server unreachable, feed degraded to local records")
		confirmed = nil
	}

	feed := make([]models.MergedFeedEntry, 0, len(pending)+len(confirmed))
	seen := make(map[string]struct{}, len(confirmed))

	for _, entry := range confirmed {
		seen[entry.LocalID] = struct{}{}
		feed = append(feed, models.MergedFeedEntry{
			LocalID:   entry.LocalID,
			EntryID:   entry.ID,
			Payload:   entry.Payload,
			Timestamp: entry.CapturedAt,
			Offline:   false,
		})
	}

	for _, record := range pending {
		if _, ok := seen[record.LocalID]; ok {
			continue
		}
		feed = append(feed, models.MergedFeedEntry{
			LocalID:   record.LocalID,
			Payload:   record.Payload,
			Timestamp: record.CapturedAt,
			Offline:   true,
		})
	}

	feed = filterFeed(feed, filter)
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	return feed, nil
}

func filterFeed(feed []models.MergedFeedEntry, filter models.FeedFilter) []models.MergedFeedEntry {
	if filter.Search == "" && filter.Zone == "" {
		return feed
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := feed[:0]
	for _, entry := range feed {
		if filter.Zone != "" && entry.Payload.Zone != filter.Zone {
			continue
		}
		if search != "" && !matchesSearch(entry.Payload, search) {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered
}

func matchesSearch(payload models.AuditPayload, search string) bool {
	return strings.Contains(strings.ToLower(payload.PlateNumber), search) ||
		strings.Contains(strings.ToLower(payload.Zone), search) ||
		strings.Contains(strings.ToLower(payload.Notes), search)
}
