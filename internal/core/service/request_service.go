package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wastemap/collection-api/internal/core/domain"
	"github.com/wastemap/collection-api/internal/core/ports"
)

// StatsCache abstracts the short-lived stats snapshot store (Redis).
// A nil cache disables caching entirely.
type StatsCache interface {
	// Get returns the cached snapshot, or (nil, nil) on a miss.
	Get(ctx context.Context) (*ports.RequestStats, error)
	Set(ctx context.Context, stats *ports.RequestStats) error
}

// RequestService implements the request lifecycle: creation, role- and
// ownership-gated reads and mutations, admin-only status transitions,
// deletion, and global statistics.
type RequestService struct {
	repo   ports.RequestRepository
	users  ports.UserRepository
	cache  StatsCache
	logger zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, users ports.UserRepository, cache StatsCache, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, users: users, cache: cache, logger: logger}
}

// Create persists a new request owned by the calling principal. Every
// authenticated principal may create; the record always starts Pending.
func (s *RequestService) Create(ctx context.Context, p domain.Principal, in ports.CreateRequestInput) (*ports.RequestRecord, error) {
	now := time.Now().UTC()
	req := &domain.Request{
		ID:          uuid.NewString(),
		OwnerID:     p.ID,
		WasteType:   domain.WasteType(in.WasteType),
		Description: in.Description,
		Location: domain.Location{
			Latitude:  in.Location.Latitude,
			Longitude: in.Location.Longitude,
			Address:   in.Location.Address,
		},
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, req); err != nil {
		s.logger.Error().Err(err).Str("owner_id", p.ID).Msg("failed to create request")
		return nil, err
	}

	s.logger.Info().Str("request_id", req.ID).Str("owner_id", p.ID).Str("waste_type", string(req.WasteType)).Msg("request created")

	return toRecord(req), nil
}

// Get returns a single request. The record must exist (checked first) and
// the principal must be its owner or an admin. Admin reads carry the owner's
// basic identity.
func (s *RequestService) Get(ctx context.Context, p domain.Principal, id string) (*ports.RequestRecord, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	grant := domain.Access(p, req.OwnerID)
	if !grant.Allowed() {
		return nil, domain.ErrForbidden
	}

	rec := toRecord(req)
	if grant == domain.GrantAdmin {
		s.attachOwner(ctx, rec)
	}
	return rec, nil
}

// List returns requests newest first. Admins see every record with owner
// identity attached; other principals see only their own, enforced as a
// store-level filter.
func (s *RequestService) List(ctx context.Context, p domain.Principal) ([]ports.RequestRecord, error) {
	filter := ports.ListRequestsFilter{OwnerID: p.ID}
	admin := domain.Access(p, "") == domain.GrantAdmin
	if admin {
		filter.OwnerID = ""
	}

	reqs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list requests")
		return nil, err
	}

	records := make([]ports.RequestRecord, 0, len(reqs))
	for _, r := range reqs {
		records = append(records, *toRecord(r))
	}

	if admin {
		s.attachOwners(ctx, records)
	}
	return records, nil
}

// Update applies a partial mutation to the mutable fields of a request.
// Absent input fields keep their stored values. The merged record is
// re-validated before persisting; on a validation failure the stored record
// is left untouched. Status is not part of the update surface at all.
func (s *RequestService) Update(ctx context.Context, p domain.Principal, id string, in ports.UpdateRequestInput) (*ports.RequestRecord, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.Access(p, req.OwnerID).Allowed() {
		return nil, domain.ErrForbidden
	}

	if in.WasteType != nil {
		req.WasteType = domain.WasteType(*in.WasteType)
	}
	if in.Description != nil {
		req.Description = *in.Description
	}
	if in.Latitude != nil {
		req.Location.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		req.Location.Longitude = *in.Longitude
	}
	if in.Address != nil {
		req.Location.Address = *in.Address
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, req); err != nil {
		s.logger.Error().Err(err).Str("request_id", id).Msg("failed to update request")
		return nil, err
	}

	s.logger.Info().Str("request_id", id).Str("principal_id", p.ID).Msg("request updated")
	return toRecord(req), nil
}

// TransitionStatus moves a request to newStatus. Only admins may transition,
// ownership grants nothing here. The status graph is complete: any status
// may move to any other, including a no-op to the same value, so the
// operation is idempotent per (id, newStatus).
func (s *RequestService) TransitionStatus(ctx context.Context, p domain.Principal, id string, newStatus string) (*ports.RequestRecord, error) {
	next := domain.RequestStatus(newStatus)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, newStatus)
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if domain.Access(p, req.OwnerID) != domain.GrantAdmin {
		return nil, domain.ErrForbidden
	}

	prev := req.Status
	req.Status = next
	req.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, req); err != nil {
		s.logger.Error().Err(err).Str("request_id", id).Msg("failed to persist status transition")
		return nil, err
	}

	s.logger.Info().
		Str("request_id", id).
		Str("from", string(prev)).
		Str("to", string(next)).
		Msg("status transitioned")

	rec := toRecord(req)
	s.attachOwner(ctx, rec)
	return rec, nil
}

// Delete removes a request permanently. Owner or admin only; there is no
// soft delete or tombstone.
func (s *RequestService) Delete(ctx context.Context, p domain.Principal, id string) error {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.Access(p, req.OwnerID).Allowed() {
		return domain.ErrForbidden
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("request_id", id).Msg("failed to delete request")
		return err
	}

	s.logger.Info().Str("request_id", id).Str("principal_id", p.ID).Msg("request deleted")
	return nil
}

// Stats returns the global per-status counts. Admin only. The counts are a
// best-effort snapshot: a short-TTL cache may serve them, and no lock spans
// the underlying count queries.
func (s *RequestService) Stats(ctx context.Context, p domain.Principal) (*ports.RequestStats, error) {
	if domain.Access(p, "") != domain.GrantAdmin {
		return nil, domain.ErrForbidden
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, counting from store")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count requests")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("failed to write stats cache")
		}
	}
	return stats, nil
}

// attachOwner fills in the owner identity on a single record. Lookup
// failures are logged, not surfaced: the record itself is the payload.
func (s *RequestService) attachOwner(ctx context.Context, rec *ports.RequestRecord) {
	user, err := s.users.FindByID(ctx, rec.OwnerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("owner_id", rec.OwnerID).Msg("owner lookup failed")
		return
	}
	rec.OwnerName = user.Name
	rec.OwnerEmail = user.Email
}

// attachOwners fills in owner identities for a list with a single batched
// lookup.
func (s *RequestService) attachOwners(ctx context.Context, records []ports.RequestRecord) {
	if len(records) == 0 {
		return
	}
	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.OwnerID]; ok {
			continue
		}
		seen[rec.OwnerID] = struct{}{}
		ids = append(ids, rec.OwnerID)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn().Err(err).Msg("batch owner lookup failed")
		return
	}
	for i := range records {
		if u, ok := users[records[i].OwnerID]; ok {
			records[i].OwnerName = u.Name
			records[i].OwnerEmail = u.Email
		}
	}
}

func toRecord(r *domain.Request) *ports.RequestRecord {
	return &ports.RequestRecord{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		WasteType:   string(r.WasteType),
		Description: r.Description,
		Location: ports.Location{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			Address:   r.Location.Address,
		},
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
