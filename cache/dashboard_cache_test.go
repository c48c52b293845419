package dashboard_cache

import (
	"testing"

	"github.com/MayankMaurya27/Ecommerce/models"
)

func TestGetMissesWhenEmpty(t *testing.T) {
	Invalidate()

	if _, ok := Get(); ok {
		t.Fatal("Get() hit on an empty cache")
	}
}

func TestSetThenGet(t *testing.T) {
	Invalidate()

	snap := models.AnalyticsSnapshot{TotalRevenue: 100, TotalOrders: 1, TotalUsers: 3}
	Set(snap)

	got, ok := Get()
	if !ok {
		t.Fatal("Get() missed right after Set()")
	}
	if got.TotalRevenue != 100 || got.TotalOrders != 1 || got.TotalUsers != 3 {
		t.Errorf("Get() = %+v, want the stored snapshot", got)
	}
}

func TestInvalidateDropsSnapshot(t *testing.T) {
	// Every collection write (product, order, user sign-up) calls Invalidate
	// so the next dashboard read recomputes instead of serving stale counts.
	Set(models.AnalyticsSnapshot{TotalUsers: 1})

	Invalidate()

	if _, ok := Get(); ok {
		t.Fatal("Get() hit after Invalidate()")
	}
}
