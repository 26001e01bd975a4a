package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a few active campaigns of each type, some house
// ads, one integrator API key and a spread of lifecycle events.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	ownerID := "demo-advertiser"
	adTypes := []string{"banner", "interstitial", "rewarded"}

	var campaignIDs []string
	for i := 1; i <= 6; i++ {
		id := uuid.NewString()
		adType := adTypes[(i-1)%len(adTypes)]
		mediaType := "image"
		if adType != "banner" {
			mediaType = "video"
		}
		rewardAmount := 0.0
		if adType == "rewarded" {
			rewardAmount = 0.1
		}
		_, err := db.Exec(ctx, `INSERT INTO ad_campaigns
	(id, owner_id, name, ad_type, media_url, media_type, destination_url,
	 title, description, status, daily_budget, total_budget, skip_after_seconds, reward_amount)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'active',$10,$11,5,$12)
	ON CONFLICT DO NOTHING`,
			id, ownerID, fmt.Sprintf("Demo campaign %d", i), adType,
			fmt.Sprintf("https://example.com/media/%d", i), mediaType,
			fmt.Sprintf("example.com/landing/%d", i),
			fmt.Sprintf("Demo ad %d", i), "Seeded demo campaign",
			15.0, 30.0, rewardAmount)
		if err != nil {
			return err
		}
		campaignIDs = append(campaignIDs, id)
	}

	var houseAdIDs []string
	for i := 1; i <= 3; i++ {
		id := uuid.NewString()
		_, err := db.Exec(ctx, `INSERT INTO app_ads
	(id, app_id, owner_id, video_url, title, duration_seconds)
	VALUES ($1,$2,$3,$4,$5,$6)
	ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("demo-app-%d", i), "demo-developer",
			fmt.Sprintf("https://example.com/promo/%d.mp4", i),
			fmt.Sprintf("Demo promo %d", i), 15+r.Intn(30))
		if err != nil {
			return err
		}
		houseAdIDs = append(houseAdIDs, id)
	}

	keyID := uuid.NewString()
	_, err := db.Exec(ctx, `INSERT INTO app_api_keys (id, owner_id, app_name, api_key)
	VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
		keyID, ownerID, "demo-integrator", "oa_demo_"+uuid.NewString())
	if err != nil {
		return err
	}

	for i := 0; i < 200; i++ {
		campaignID := campaignIDs[r.Intn(len(campaignIDs))]
		eventType := "impression"
		column := "impressions_count"
		if r.Intn(10) == 0 {
			eventType = "click"
			column = "clicks_count"
		}
		_, err = db.Exec(ctx, `INSERT INTO ad_campaign_events
	(id, campaign_id, event_type, api_key_id, ip_address, user_agent)
	VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.NewString(), campaignID, eventType, keyID,
			fmt.Sprintf("203.0.113.%d", r.Intn(255)), "seed/1.0")
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx,
			fmt.Sprintf(`UPDATE ad_campaigns SET %s = %s + 1 WHERE id = $1`, column, column),
			campaignID)
		if err != nil {
			return err
		}
	}

	for i := 0; i < 50; i++ {
		houseAdID := houseAdIDs[r.Intn(len(houseAdIDs))]
		_, err = db.Exec(ctx, `INSERT INTO ad_campaign_events
	(id, house_ad_id, event_type, ip_address, user_agent)
	VALUES ($1,$2,'impression',$3,$4)`,
			uuid.NewString(), houseAdID,
			fmt.Sprintf("203.0.113.%d", r.Intn(255)), "seed/1.0")
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx,
			`UPDATE app_ads SET impressions_count = impressions_count + 1 WHERE id = $1`,
			houseAdID)
		if err != nil {
			return err
		}
	}
	return nil
}
