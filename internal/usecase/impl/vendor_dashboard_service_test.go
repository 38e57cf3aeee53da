package impl

import (
	"context"
	"testing"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/listing"
	mockRepo "streetbite/internal/mocks/repository"
	"streetbite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func vendorAccount() *fakeCell {
	return signedInAs(entity.User{ID: "9", Role: entity.RoleVendor, VendorID: "42"})
}

func TestVendorDashboardService_RequiresLinkedVendor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cell    *fakeCell
		wantErr error
	}{
		{name: "signed out", cell: &fakeCell{}, wantErr: domainerrors.ErrUnauthorized},
		{name: "customer", cell: signedInAs(entity.User{ID: "1", Role: entity.RoleUser}), wantErr: domainerrors.ErrForbidden},
		{name: "vendor without stall", cell: signedInAs(entity.User{ID: "1", Role: entity.RoleVendor}), wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewVendorDashboardService(VendorDashboardServiceParams{
				VendorRepo: mockRepo.NewMockVendorRepository(t),
				MenuRepo:   mockRepo.NewMockMenuRepository(t),
				Cell:       tt.cell,
				Logger:     discardLogger(),
			})

			_, err := svc.Menu(context.Background(), listing.MenuCriteria{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVendorDashboardService_CreateMenuItemDefaultsAvailable(t *testing.T) {
	t.Parallel()

	menuRepo := mockRepo.NewMockMenuRepository(t)
	svc := NewVendorDashboardService(VendorDashboardServiceParams{
		VendorRepo: mockRepo.NewMockVendorRepository(t),
		MenuRepo:   menuRepo,
		Cell:       vendorAccount(),
		Logger:     discardLogger(),
	})

	menuRepo.EXPECT().CreateMenuItem(mock.Anything, mock.MatchedBy(func(item *entity.MenuItem) bool {
		return item.VendorID == "42" && item.IsAvailable && item.Name == "Taco"
	})).RunAndReturn(func(_ context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
		created := *item
		created.ID = "100"

		return &created, nil
	})

	got, err := svc.CreateMenuItem(context.Background(), usecase.CreateMenuItemInput{Name: " Taco ", Price: 3.5})
	require.NoError(t, err)
	assert.Equal(t, entity.ID("100"), got.ID)
}

func TestVendorDashboardService_UpdateMenuItemRejectsEmptyPatch(t *testing.T) {
	t.Parallel()

	svc := NewVendorDashboardService(VendorDashboardServiceParams{
		VendorRepo: mockRepo.NewMockVendorRepository(t),
		MenuRepo:   mockRepo.NewMockMenuRepository(t),
		Cell:       vendorAccount(),
		Logger:     discardLogger(),
	})

	_, err := svc.UpdateMenuItem(context.Background(), "100", entity.MenuItemPatch{})
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidationFailed))
}

func TestVendorDashboardService_UpdateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status entity.VendorStatus
		ok     bool
	}{
		{name: "available", status: entity.VendorStatusAvailable, ok: true},
		{name: "busy", status: entity.VendorStatusBusy, ok: true},
		{name: "moderation status is not allowed", status: entity.VendorStatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vendorRepo := mockRepo.NewMockVendorRepository(t)
			svc := NewVendorDashboardService(VendorDashboardServiceParams{
				VendorRepo: vendorRepo,
				MenuRepo:   mockRepo.NewMockMenuRepository(t),
				Cell:       vendorAccount(),
				Logger:     discardLogger(),
			})

			if tt.ok {
				vendorRepo.EXPECT().UpdateVendorStatus(mock.Anything, entity.ID("42"), tt.status).
					Return(&entity.Vendor{ID: "42", Status: tt.status}, nil)
			}

			got, err := svc.UpdateStatus(context.Background(), tt.status)
			if !tt.ok {
				assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidationFailed))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}
