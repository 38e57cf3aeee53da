package listing

import (
	"testing"

	"streetbite/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func vendorIDs(items []entity.Vendor) []entity.ID {
	ids := make([]entity.ID, 0, len(items))
	for _, v := range items {
		ids = append(ids, v.ID)
	}

	return ids
}

func sampleVendors() []entity.Vendor {
	return []entity.Vendor{
		{ID: "1", Name: "Tapri", Cuisine: "Indian", Address: "FC Road", Status: entity.VendorStatusApproved,
			Owner: &entity.VendorOwner{DisplayName: "Ravi"}},
		{ID: "2", Name: "El Camion", Cuisine: "Mexican", Address: "Camp", Status: entity.VendorStatusPending},
		{ID: "3", Name: "Dragon Cart", Cuisine: "Asian", Address: "Koregaon Park", Status: entity.VendorStatusBusy},
		{ID: "4", Name: "Shawarma Co", Cuisine: "Middle Eastern", Address: "Camp", Status: entity.VendorStatusSuspended},
		{ID: "5", Name: "Vada Pav King", Cuisine: "Indian", Address: "Deccan", Status: entity.VendorStatusAvailable},
		{ID: "6", Name: "Night Owl", Cuisine: "Indian", Address: "Deccan", Status: entity.VendorStatusUnavailable},
		{ID: "7", Name: "Rejected Rolls", Cuisine: "Asian", Status: entity.VendorStatusRejected},
	}
}

func TestPublicVisible(t *testing.T) {
	t.Parallel()

	got := PublicVisible(sampleVendors())
	assert.Equal(t, []entity.ID{"1", "3", "5"}, vendorIDs(got))

	for _, v := range got {
		assert.NotEqual(t, entity.VendorStatusPending, v.Status)
	}
}

func TestFilterVendors(t *testing.T) {
	t.Parallel()

	items := PublicVisible(sampleVendors())

	tests := []struct {
		name     string
		criteria VendorCriteria
		want     []entity.ID
	}{
		{"empty", VendorCriteria{}, []entity.ID{"1", "3", "5"}},
		{"cuisine case-insensitive", VendorCriteria{Cuisine: "indian"}, []entity.ID{"1", "5"}},
		{"query on address", VendorCriteria{Query: "deccan"}, []entity.ID{"5"}},
		{"query on cuisine", VendorCriteria{Query: "asi"}, []entity.ID{"3"}},
		{"status set", VendorCriteria{Statuses: []entity.VendorStatus{entity.VendorStatusBusy}}, []entity.ID{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, vendorIDs(FilterVendors(items, tt.criteria)))
		})
	}
}

func TestFilterAdminVendors(t *testing.T) {
	t.Parallel()

	items := sampleVendors()

	assert.Len(t, FilterAdminVendors(items, AdminVendorCriteria{Status: "All"}), len(items))
	assert.Equal(t, []entity.ID{"2"}, vendorIDs(FilterAdminVendors(items, AdminVendorCriteria{Status: "PENDING"})))
	assert.Equal(t, []entity.ID{"1"}, vendorIDs(FilterAdminVendors(items, AdminVendorCriteria{Query: "ravi"})))
	assert.Empty(t, FilterAdminVendors(items, AdminVendorCriteria{Status: "PENDING", Query: "tapri"}))
	assert.Equal(t, 1, PendingCount(items))
}

func TestVendorCuisines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"All", "Indian", "Mexican", "Asian", "Middle Eastern"}, VendorCuisines(sampleVendors()))
	assert.Equal(t, []string{"All"}, VendorCuisines(nil))
}
