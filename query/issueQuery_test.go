package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesDefaults(t *testing.T) {
	v := New().Values()

	assert.Equal(t, "created_at", v.Get("sort_by"))
	assert.Equal(t, "desc", v.Get("sort_order"))
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "12", v.Get("limit"))

	// unset filters are absent, not empty strings
	for _, k := range []string{"search", "district", "category", "status"} {
		_, present := v[k]
		assert.False(t, present, k)
	}
}

func TestValuesDropsEmptyFields(t *testing.T) {
	q := New()
	q.Search = ""
	q.District = ""
	q.Category = "Garbage"

	v := q.Values()
	_, hasSearch := v["search"]
	_, hasDistrict := v["district"]
	assert.False(t, hasSearch)
	assert.False(t, hasDistrict)
	assert.Equal(t, "Garbage", v.Get("category"))
}

func TestValuesStatusIsAlwaysInteger(t *testing.T) {
	q := New()

	q.Status = "2"
	assert.Equal(t, "2", q.Values().Get("status"))

	// display labels normalize to the integer form
	q.Status = "In Progress"
	assert.Equal(t, "1", q.Values().Get("status"))

	q.Status = "Resolved"
	assert.Equal(t, "2", q.Values().Get("status"))

	// unknown or out-of-range values are dropped
	for _, s := range []string{"", "Bogus", "9", "-1"} {
		q.Status = s
		_, present := q.Values()["status"]
		assert.False(t, present, s)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	q := New()
	q.SetPage(4)
	assert.Equal(t, 4, q.Page)

	q.SetSearch("pothole")
	assert.Equal(t, 1, q.Page)

	q.SetPage(3)
	q.SetDistrict("Anand")
	assert.Equal(t, 1, q.Page)

	q.SetPage(3)
	q.SetCategory("Roads")
	assert.Equal(t, 1, q.Page)

	q.SetPage(3)
	q.SetStatus("0")
	assert.Equal(t, 1, q.Page)

	q.SetPage(3)
	q.SetSort("priority", "asc")
	assert.Equal(t, 1, q.Page)

	// paging alone leaves every filter untouched
	q.SetSearch("pothole")
	q.SetPage(2)
	assert.Equal(t, "pothole", q.Search)
	assert.Equal(t, "priority", q.SortBy)
	assert.Equal(t, "asc", q.SortOrder)
	assert.Equal(t, 2, q.Page)
}

func TestValuesClamping(t *testing.T) {
	q := New()
	q.Page = 0
	q.Limit = 500
	v := q.Values()
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "12", v.Get("limit"))

	q.SortBy = "votes" // not a sortable field
	q.SortOrder = "sideways"
	v = q.Values()
	assert.Equal(t, "created_at", v.Get("sort_by"))
	assert.Equal(t, "desc", v.Get("sort_order"))
}

func TestKeyStability(t *testing.T) {
	a := New()
	a.SetSearch("water")
	a.SetDistrict("Surat")

	b := New()
	b.SetDistrict("Surat")
	b.SetSearch("water")

	assert.Equal(t, a.Key(), b.Key())

	b.SetPage(2)
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestSetLimitResetsPage(t *testing.T) {
	q := New()
	q.SetPage(3)
	q.SetLimit(24)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, "24", q.Values().Get("limit"))
}

func TestReset(t *testing.T) {
	q := New()
	q.SetSearch("streetlight")
	q.SetStatus("1")
	q.SetPage(5)

	q.Reset()
	assert.Equal(t, New(), q)
}
