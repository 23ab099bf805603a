package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tour-campaigns/internal/core/domain"
)

// seedNamespace derives stable ids so seeding twice inserts nothing new.
var seedNamespace = uuid.MustParse("6f1f5b2e-3d7a-4c1e-9a53-1c2b8f0d4e77")

// Demo is a small, self-consistent data set for local runs.
type Demo struct {
	Users     []domain.Identity
	Tours     []domain.TourRef
	Campaigns []domain.Campaign
}

// DemoData builds the demo data set relative to now.
func DemoData(now time.Time) Demo {
	r := rand.New(rand.NewSource(now.UnixNano()))
	var d Demo
	for i := 1; i <= 3; i++ {
		d.Users = append(d.Users, domain.Identity{
			ID:       uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("user-%d", i))),
			Username: fmt.Sprintf("marketer%d", i),
		})
	}
	for i, name := range []string{"Cappadocia Balloon Weekend", "Lycian Way Trek", "Pamukkale Day Trip", "Bosphorus Night Cruise"} {
		d.Tours = append(d.Tours, domain.TourRef{
			ID:   uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("tour-%d", i+1))),
			Name: name,
		})
	}

	statuses := []domain.Status{domain.StatusDraft, domain.StatusActive, domain.StatusActive, domain.StatusPaused, domain.StatusCompleted, domain.StatusCancelled}
	types := []domain.CampaignType{domain.TypeEmail, domain.TypeSocialMedia, domain.TypeSearchEngine, domain.TypeDisplay}
	audiences := []string{"families", "backpackers", "seniors", "couples"}
	for i := 1; i <= 10; i++ {
		status := statuses[i%len(statuses)]
		start := now.AddDate(0, 0, -30+r.Intn(40))
		end := start.AddDate(0, 0, 7+r.Intn(60))
		target := int64(100 * (1 + r.Intn(10)))
		var actual int64
		if status != domain.StatusDraft {
			actual = r.Int63n(target + target/2)
		}
		d.Campaigns = append(d.Campaigns, domain.Campaign{
			ID:             uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("campaign-%d", i))),
			Name:           fmt.Sprintf("Campaign %d", i),
			Description:    "Seeded demo campaign",
			TargetAudience: audiences[i%len(audiences)],
			Type:           types[i%len(types)],
			Status:         status,
			Budget:         decimal.NewFromInt(int64(500 * (1 + r.Intn(8)))),
			StartDate:      start,
			EndDate:        end,
			TargetClicks:   target,
			ActualClicks:   actual,
			CreatedBy:      d.Users[i%len(d.Users)].ID,
			Tours:          []uuid.UUID{d.Tours[i%len(d.Tours)].ID},
			CreatedAt:      now,
			UpdatedAt:      now,
			Version:        1,
		})
	}
	return d
}

// Seed inserts the demo data into the database. Existing rows are kept.
func Seed(ctx context.Context, pool *pgxpool.Pool, d Demo) error {
	for _, u := range d.Users {
		if _, err := pool.Exec(ctx, `INSERT INTO users (id, username) VALUES ($1, $2)
ON CONFLICT DO NOTHING`, u.ID, u.Username); err != nil {
			return err
		}
	}
	for _, t := range d.Tours {
		if _, err := pool.Exec(ctx, `INSERT INTO tours (id, name) VALUES ($1, $2)
ON CONFLICT DO NOTHING`, t.ID, t.Name); err != nil {
			return err
		}
	}
	for _, c := range d.Campaigns {
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, description, target_audience, type, status, budget, start_date, end_date,
     target_clicks, actual_clicks, created_by, created_at, updated_at, version)
VALUES ($1,$2,$3,$4,$5,$6,$7::numeric,$8,$9,$10,$11,$12,$13,$14,$15) ON CONFLICT DO NOTHING`,
			c.ID, c.Name, c.Description, c.TargetAudience, string(c.Type), string(c.Status),
			c.Budget.String(), c.StartDate, c.EndDate, c.TargetClicks, c.ActualClicks,
			c.CreatedBy, c.CreatedAt, c.UpdatedAt, c.Version)
		if err != nil {
			return err
		}
		for _, tourID := range c.Tours {
			if _, err = pool.Exec(ctx, `INSERT INTO campaign_tours (campaign_id, tour_id)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, c.ID, tourID); err != nil {
				return err
			}
		}
	}
	return nil
}
