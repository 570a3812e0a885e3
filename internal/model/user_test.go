package model_test

import (
	"testing"
	"time"

	"beauty-parlour-api/internal/model"
)

func TestSubscriptionActiveAt(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 3, 0)

	cases := []struct {
		name string
		sub  model.Subscription
		at   time.Time
		want bool
	}{
		{"never purchased", model.Subscription{}, now, false},
		{"active within window", model.Subscription{Type: "3months", EndDate: &end, IsActive: true}, now, true},
		{"active at end date", model.Subscription{Type: "3months", EndDate: &end, IsActive: true}, end, true},
		{"lapsed window", model.Subscription{Type: "3months", EndDate: &end, IsActive: true}, end.AddDate(0, 0, 1), false},
		{"flag set but no end date", model.Subscription{Type: "3months", IsActive: true}, now, false},
		{"flag cleared", model.Subscription{Type: "3months", EndDate: &end, IsActive: false}, now, false},
	}

	for _, c := range cases {
		if got := c.sub.ActiveAt(c.at); got != c.want {
			t.Errorf("%s: ActiveAt = %v, want %v", c.name, got, c.want)
		}
	}
}
