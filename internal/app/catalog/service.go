package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/hoosierillusions/kiosk/internal/domain/media"
	"github.com/hoosierillusions/kiosk/internal/infra/store"
)

// MappingsKey is the object-store key holding the persisted custom
// mapping overrides.
const MappingsKey = "mappings.json"

// retiredTriggers are keys forcibly dropped from every save; they existed
// in old deployments and keep resurfacing from stale admin payloads.
var retiredTriggers = []string{"vr"}

// OnDemandLister fetches the station's on-demand track listing.
type OnDemandLister interface {
	GetOnDemand(ctx context.Context) ([]media.Track, error)
}

// Service builds the effective catalog from the object store, the shipped
// defaults and the live on-demand listing, with a brief cache so kiosk
// clients can poll cheaply.
type Service struct {
	store          store.ObjectStore
	station        OnDemandLister
	stationBaseURL string
	cacheTTL       time.Duration

	mu           sync.Mutex
	cached       media.Catalog
	cachedTracks []media.Track
	cachedAt     time.Time
}

// NewService creates a catalog service.
func NewService(st store.ObjectStore, station OnDemandLister, stationBaseURL string, cacheTTL time.Duration) *Service {
	return &Service{
		store:          st,
		station:        station,
		stationBaseURL: stationBaseURL,
		cacheTTL:       cacheTTL,
	}
}

// Effective returns the merged effective catalog plus the on-demand tracks
// the merge used. Storage and remote failures are absorbed: the catalog
// degrades to whatever layers were reachable, so the kiosk stays usable
// offline. Results are cached briefly.
func (s *Service) Effective(ctx context.Context) (media.Catalog, []media.Track) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
		return s.cached.Clone(), s.cachedTracks
	}

	custom, err := s.loadCustom(ctx)
	if err != nil {
		zlog.Error().Msgf("catalog: failed to load custom mappings, using defaults only: %v", err)
		custom = media.Catalog{}
	}

	tracks, err := s.station.GetOnDemand(ctx)
	if err != nil {
		zlog.Warn().Msgf("catalog: on-demand listing unavailable: %v", err)
		tracks = nil
	}

	merged := Merge(media.DefaultCatalog(), custom, tracks, s.stationBaseURL)

	s.cached = merged
	s.cachedTracks = tracks
	s.cachedAt = time.Now()

	return merged.Clone(), tracks
}

// InvalidateCache drops the merged-catalog cache so the next Effective call
// rebuilds from storage.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.cachedTracks = nil
}

// RawCustom returns the persisted custom overrides with on-demand download
// URLs overlaid, for the admin editor. Unlike Effective, a storage failure
// here is an error: the admin needs to know edits cannot round-trip.
func (s *Service) RawCustom(ctx context.Context) (media.Catalog, error) {
	custom, err := s.loadCustom(ctx)
	if err != nil {
		return nil, err
	}

	tracks, err := s.station.GetOnDemand(ctx)
	if err != nil {
		zlog.Warn().Msgf("catalog: on-demand listing unavailable: %v", err)
		return custom, nil
	}

	for _, t := range tracks {
		key := t.Key()
		if key == "" {
			continue
		}
		audioURL := OnDemandAudioURL(s.stationBaseURL, t)
		if existing, ok := custom[key]; ok {
			existing.AudioURL = audioURL
			custom[key] = existing
		} else {
			custom[key] = media.Mapping{
				AudioURL:       audioURL,
				ShowInDropdown: true,
				MuteVideo:      true,
			}
		}
	}

	return custom, nil
}

// SaveCustom persists the full custom catalog. Any shipped default key
// omitted from the payload is tombstoned so the omission survives future
// merges; retired triggers are dropped outright.
func (s *Service) SaveCustom(ctx context.Context, payload media.Catalog) error {
	toSave := make(media.Catalog, len(payload))
	for key, m := range payload {
		toSave[media.NormalizeTrigger(key)] = m
	}

	for key := range media.DefaultCatalog() {
		if _, ok := toSave[key]; !ok {
			toSave[key] = media.Mapping{
				ShowInDropdown: true,
				MuteVideo:      true,
				Deleted:        true,
			}
		}
	}

	for _, key := range retiredTriggers {
		delete(toSave, key)
	}

	if err := s.persist(ctx, toSave); err != nil {
		return err
	}
	s.InvalidateCache()
	return nil
}

// SaveMapping inserts or replaces a single custom mapping. URL validation
// is the caller's concern; this is pure persistence.
func (s *Service) SaveMapping(ctx context.Context, trigger string, m media.Mapping) error {
	norm := media.NormalizeTrigger(trigger)
	if norm == "" {
		return errors.New("trigger word is required")
	}

	custom, err := s.loadCustom(ctx)
	if err != nil {
		return err
	}

	custom[norm] = m

	if err := s.persist(ctx, custom); err != nil {
		return err
	}
	s.InvalidateCache()
	return nil
}

// UpsertTracks inserts or back-fills the given tracks into the persisted
// custom catalog so each becomes individually triggerable. Existing user
// data is never overwritten; only empty fields are filled.
func (s *Service) UpsertTracks(ctx context.Context, tracks []media.Track) error {
	if len(tracks) == 0 {
		return nil
	}

	custom, err := s.loadCustom(ctx)
	if err != nil {
		return err
	}

	for _, t := range tracks {
		key := t.Key()
		if key == "" {
			continue
		}
		audioURL := OnDemandAudioURL(s.stationBaseURL, t)

		existing, ok := custom[key]
		if !ok {
			custom[key] = media.Mapping{
				AudioURL:       audioURL,
				ShowInDropdown: true,
				MuteVideo:      true,
				Title:          t.Title,
				Album:          t.Album,
				Artist:         t.Artist,
				ImageURL:       t.ArtURL,
			}
			continue
		}

		if isPlaceholderAudioURL(existing.AudioURL) {
			existing.AudioURL = audioURL
		}
		if existing.ImageURL == "" && t.ArtURL != "" {
			existing.ImageURL = t.ArtURL
		}
		if existing.Title == "" {
			existing.Title = t.Title
		}
		if existing.Album == "" {
			existing.Album = t.Album
		}
		custom[key] = existing
	}

	if err := s.persist(ctx, custom); err != nil {
		return err
	}
	s.InvalidateCache()
	return nil
}

func (s *Service) loadCustom(ctx context.Context) (media.Catalog, error) {
	data, err := s.store.Get(ctx, MappingsKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return media.Catalog{}, nil
		}
		return nil, errors.Wrap(err, "failed to load custom mappings")
	}

	var custom media.Catalog
	if err := json.Unmarshal(data, &custom); err != nil {
		return nil, errors.Wrap(err, "failed to parse custom mappings")
	}
	if custom == nil {
		custom = media.Catalog{}
	}
	return custom, nil
}

func (s *Service) persist(ctx context.Context, cat media.Catalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode mappings")
	}
	if err := s.store.Put(ctx, MappingsKey, data); err != nil {
		return errors.Wrap(err, "failed to persist mappings")
	}
	return nil
}
