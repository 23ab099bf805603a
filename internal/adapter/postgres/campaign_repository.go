package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tour-campaigns/internal/core/domain"
	"tour-campaigns/internal/core/port"
)

const (
	uniqueViolation = "23505"
	nameUniqueIndex = "campaigns_name_lower_key"
	tourStatements  = 2
)

// campaignColumns selects a campaign together with its tour ids. The
// budget is read as text to keep its exact decimal representation.
const campaignColumns = `
    c.id,
    c.name,
    c.description,
    c.target_audience,
    c.type,
    c.status,
    c.budget::text,
    c.start_date,
    c.end_date,
    c.target_clicks,
    c.actual_clicks,
    c.created_by,
    c.created_at,
    c.updated_at,
    c.version,
    COALESCE((SELECT array_agg(ct.tour_id::text ORDER BY ct.tour_id)
              FROM campaign_tours ct WHERE ct.campaign_id = c.id), '{}')`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// FindByID returns a campaign by id.
func (r *CampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return r.queryOne(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id)
}

// FindByName returns a campaign by name, ignoring case.
func (r *CampaignRepository) FindByName(ctx context.Context, name string) (*domain.Campaign, error) {
	return r.queryOne(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE lower(c.name) = lower($1)`, name)
}

// ExistsByName reports whether a campaign with the name exists.
func (r *CampaignRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE lower(name) = lower($1))`, name).Scan(&exists)
	return exists, err
}

// FindAll returns every campaign ordered by creation time.
func (r *CampaignRepository) FindAll(ctx context.Context) ([]domain.Campaign, error) {
	return r.queryMany(ctx, `SELECT `+campaignColumns+` FROM campaigns c ORDER BY c.created_at, c.id`)
}

// FindPage returns one page of campaigns ordered by creation time.
func (r *CampaignRepository) FindPage(ctx context.Context, req port.PageReq) (port.Page[domain.Campaign], error) {
	total, err := r.Count(ctx)
	if err != nil {
		return port.Page[domain.Campaign]{}, err
	}
	items, err := r.queryMany(ctx, `SELECT `+campaignColumns+` FROM campaigns c
        ORDER BY c.created_at, c.id LIMIT $1 OFFSET $2`, req.Size, req.Offset())
	if err != nil {
		return port.Page[domain.Campaign]{}, err
	}
	return port.NewPage(items, req, total), nil
}

// FindByCreator returns campaigns created by creator.
func (r *CampaignRepository) FindByCreator(ctx context.Context, creator uuid.UUID) ([]domain.Campaign, error) {
	return r.queryMany(ctx, `SELECT `+campaignColumns+` FROM campaigns c
        WHERE c.created_by = $1 ORDER BY c.created_at, c.id`, creator)
}

// FindByStatus returns campaigns in status.
func (r *CampaignRepository) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error) {
	return r.queryMany(ctx, `SELECT `+campaignColumns+` FROM campaigns c
        WHERE c.status = $1 ORDER BY c.created_at, c.id`, string(status))
}

// FindActiveByAudience returns active campaigns for audience.
func (r *CampaignRepository) FindActiveByAudience(ctx context.Context, audience string) ([]domain.Campaign, error) {
	return r.queryMany(ctx, `SELECT `+campaignColumns+` FROM campaigns c
        WHERE c.status = $1 AND lower(c.target_audience) = lower($2)
        ORDER BY c.created_at, c.id`, string(domain.StatusActive), audience)
}

// FindTopByClicks returns at most n campaigns with the most clicks.
func (r *CampaignRepository) FindTopByClicks(ctx context.Context, n int) ([]domain.Campaign, error) {
	return r.queryMany(ctx, `SELECT `+campaignColumns+` FROM campaigns c
        ORDER BY c.actual_clicks DESC, c.created_at, c.id LIMIT $1`, n)
}

// Count returns the number of campaigns.
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}

// Save inserts or updates one campaign.
func (r *CampaignRepository) Save(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	saved, err := r.SaveAll(ctx, []domain.Campaign{c})
	if err != nil {
		return domain.Campaign{}, err
	}
	return saved[0], nil
}

// SaveAll writes every campaign in one transaction. The guarded row writes
// go out in a first batch and the tour links in a second one, so a stale or
// missing row is reported before any link statement can fail on it. If any
// write is stale or targets a missing row the whole transaction is rolled
// back.
func (r *CampaignRepository) SaveAll(ctx context.Context, cs []domain.Campaign) ([]domain.Campaign, error) {
	if len(cs) == 0 {
		return []domain.Campaign{}, nil
	}
	out := make([]domain.Campaign, len(cs))
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		rows := &pgx.Batch{}
		for i, c := range cs {
			out[i] = queueRowWrite(rows, c)
		}
		br := tx.SendBatch(ctx, rows)
		for i := range cs {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return mapWriteError(err, out[i].Name)
			}
			if tag.RowsAffected() == 0 {
				_ = br.Close()
				return r.staleOrMissing(ctx, tx, cs[i].ID)
			}
		}
		if err := br.Close(); err != nil {
			return err
		}

		tours := &pgx.Batch{}
		for _, c := range out {
			queueTours(tours, c)
		}
		br = tx.SendBatch(ctx, tours)
		for range tours.Len() {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return err
			}
		}
		return br.Close()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes a campaign. Tour links cascade.
func (r *CampaignRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.CampaignNotFound(id)
	}
	return nil
}

// DeleteAllByID removes every listed campaign or, if any is missing, none.
func (r *CampaignRepository) DeleteAllByID(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM campaigns WHERE id = ANY($1::text[]::uuid[])`, uuidStrings(ids))
		if err != nil {
			return err
		}
		if tag.RowsAffected() != int64(len(ids)) {
			return fmt.Errorf("deleted %d of %d campaigns: %w", tag.RowsAffected(), len(ids), domain.ErrNotFound)
		}
		return nil
	})
}

// DeleteAll removes the given campaigns in one transaction.
func (r *CampaignRepository) DeleteAll(ctx context.Context, cs []domain.Campaign) error {
	ids := make([]uuid.UUID, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	return r.DeleteAllByID(ctx, ids)
}

// inTx runs fn inside a transaction, committing on success.
func (r *CampaignRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

// staleOrMissing explains why a guarded update touched no row.
func (r *CampaignRepository) staleOrMissing(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.CampaignNotFound(id)
	}
	return fmt.Errorf("campaign %s: %w", id, domain.ErrConcurrentModification)
}

// queueRowWrite adds the guarded row write for c to batch and returns c as
// it will be stored.
func queueRowWrite(batch *pgx.Batch, c domain.Campaign) domain.Campaign {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	creator := uuid.NullUUID{UUID: c.CreatedBy, Valid: c.CreatedBy != uuid.Nil}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
		c.Version = 1
		batch.Queue(`INSERT INTO campaigns
    (id, name, description, target_audience, type, status, budget, start_date, end_date,
     target_clicks, actual_clicks, created_by, created_at, updated_at, version)
VALUES ($1,$2,$3,$4,$5,$6,$7::numeric,$8,$9,$10,$11,$12,$13,$14,$15)`,
			c.ID, c.Name, c.Description, c.TargetAudience, string(c.Type), string(c.Status),
			c.Budget.String(), c.StartDate, c.EndDate, c.TargetClicks, c.ActualClicks,
			creator, c.CreatedAt, c.UpdatedAt, c.Version)
		return c
	}
	batch.Queue(`UPDATE campaigns SET
    name = $2, description = $3, target_audience = $4, type = $5, status = $6,
    budget = $7::numeric, start_date = $8, end_date = $9, target_clicks = $10,
    actual_clicks = $11, updated_at = $12, version = version + 1
WHERE id = $1 AND version = $13`,
		c.ID, c.Name, c.Description, c.TargetAudience, string(c.Type), string(c.Status),
		c.Budget.String(), c.StartDate, c.EndDate, c.TargetClicks, c.ActualClicks,
		c.UpdatedAt, c.Version)
	c.Version++
	return c
}

// queueTours replaces the tour links of c. It queues tourStatements
// statements.
func queueTours(batch *pgx.Batch, c domain.Campaign) {
	batch.Queue(`DELETE FROM campaign_tours WHERE campaign_id = $1`, c.ID)
	batch.Queue(`INSERT INTO campaign_tours (campaign_id, tour_id)
SELECT $1, t::uuid FROM unnest($2::text[]) AS t`, c.ID, uuidStrings(c.Tours))
}

// mapWriteError translates constraint violations into domain errors.
func mapWriteError(err error, name string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == nameUniqueIndex {
		return domain.DuplicateName(name)
	}
	return err
}

func (r *CampaignRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// scanCampaign scans a row selected with campaignColumns.
func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c       domain.Campaign
		typ     string
		status  string
		budget  string
		creator uuid.NullUUID
		tours   []string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.TargetAudience,
		&typ,
		&status,
		&budget,
		&c.StartDate,
		&c.EndDate,
		&c.TargetClicks,
		&c.ActualClicks,
		&creator,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Version,
		&tours,
	)
	if err != nil {
		return c, err
	}
	c.Type = domain.CampaignType(typ)
	c.Status = domain.Status(status)
	if c.Budget, err = decimal.NewFromString(budget); err != nil {
		return c, fmt.Errorf("campaign %s: parse budget %q: %w", c.ID, budget, err)
	}
	if creator.Valid {
		c.CreatedBy = creator.UUID
	}
	c.Tours = make([]uuid.UUID, 0, len(tours))
	for _, t := range tours {
		id, err := uuid.Parse(t)
		if err != nil {
			return c, fmt.Errorf("campaign %s: parse tour id %q: %w", c.ID, t, err)
		}
		c.Tours = append(c.Tours, id)
	}
	return c, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
