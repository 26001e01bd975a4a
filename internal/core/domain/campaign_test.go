package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := map[CampaignStatus][]CampaignStatus{
		StatusPending: {StatusActive, StatusRejected},
		StatusActive:  {StatusPaused},
		StatusPaused:  {StatusActive},
	}
	statuses := []CampaignStatus{StatusPending, StatusActive, StatusPaused, StatusRejected}

	for _, from := range statuses {
		for _, to := range statuses {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			if got := from.CanTransition(to); got != want {
				t.Fatalf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestEventTypeAllowedFor(t *testing.T) {
	if !EventImpression.AllowedFor(KindHouse) || !EventClick.AllowedFor(KindHouse) {
		t.Fatal("house ads must accept impressions and clicks")
	}
	if EventRewardComplete.AllowedFor(KindHouse) {
		t.Fatal("house ads have no reward concept")
	}
	if !EventRewardComplete.AllowedFor(KindCampaign) {
		t.Fatal("campaigns accept reward completions")
	}
}

func TestEventTypeCounterColumn(t *testing.T) {
	cases := map[EventType]string{
		EventImpression:     "impressions_count",
		EventClick:          "clicks_count",
		EventRewardComplete: "rewards_count",
	}
	for e, want := range cases {
		if got := e.CounterColumn(); got != want {
			t.Fatalf("%s column %q, want %q", e, got, want)
		}
	}
}
