package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonation(amount int64) domain.Donation {
	return domain.Donation{
		DonationID: uuid.NewString(),
		Name:       "Asha",
		Email:      "asha@example.com",
		Amount:     decimal.NewFromInt(amount),
		CreatedAt:  time.Now(),
	}
}

func TestSaveAndListDonations(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonationRepository()

	first := newDonation(50)
	second := newDonation(100)

	require.NoError(t, repo.SaveDonation(ctx, first))
	require.NoError(t, repo.SaveDonation(ctx, second))

	donations, err := repo.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, donations, 2)

	// Creation order is preserved
	assert.Equal(t, first.DonationID, donations[0].DonationID)
	assert.Equal(t, second.DonationID, donations[1].DonationID)
}

func TestListDonationsReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonationRepository()
	require.NoError(t, repo.SaveDonation(ctx, newDonation(50)))

	donations, err := repo.ListDonations(ctx)
	require.NoError(t, err)

	// Mutating the snapshot must not affect the store
	donations[0].Name = "tampered"

	again, err := repo.ListDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha", again[0].Name)
}

func TestSaveDonationRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonationRepository()

	zeroAmount := newDonation(0)
	assert.ErrorIs(t, repo.SaveDonation(ctx, zeroAmount), apperrors.ErrValidation)

	negative := newDonation(-10)
	assert.ErrorIs(t, repo.SaveDonation(ctx, negative), apperrors.ErrValidation)

	noName := newDonation(50)
	noName.Name = ""
	assert.ErrorIs(t, repo.SaveDonation(ctx, noName), apperrors.ErrValidation)

	// Rejected writes leave the record set unchanged
	donations, err := repo.ListDonations(ctx)
	require.NoError(t, err)
	assert.Empty(t, donations)
}

func TestSaveDonationRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonationRepository()

	donation := newDonation(50)
	require.NoError(t, repo.SaveDonation(ctx, donation))
	assert.ErrorIs(t, repo.SaveDonation(ctx, donation), apperrors.ErrDuplicate)
}

func TestFindDonationByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonationRepository()

	donation := newDonation(50)
	require.NoError(t, repo.SaveDonation(ctx, donation))

	found, err := repo.FindDonationByID(ctx, donation.DonationID)
	require.NoError(t, err)
	assert.Equal(t, donation.DonationID, found.DonationID)

	_, err = repo.FindDonationByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDonationStats(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonationRepository()

	stats, err := repo.DonationStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.Count)
	assert.True(t, stats.TotalAmount.IsZero())
	assert.True(t, stats.AverageAmount.IsZero())

	require.NoError(t, repo.SaveDonation(ctx, newDonation(50)))
	require.NoError(t, repo.SaveDonation(ctx, newDonation(100)))

	stats, err = repo.DonationStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Count)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(150)), "total: %s", stats.TotalAmount)
	assert.True(t, stats.AverageAmount.Equal(decimal.NewFromInt(75)), "average: %s", stats.AverageAmount)
}

func TestConcurrentSavesKeepAllRecords(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonationRepository()

	const writers = 25
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			d := newDonation(int64(n + 1))
			d.Email = fmt.Sprintf("donor%d@example.com", n)
			errs <- repo.SaveDonation(ctx, d)
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	donations, err := repo.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, donations, writers)

	// No record lost or overwritten: all IDs distinct
	seen := make(map[string]bool, writers)
	for _, d := range donations {
		assert.False(t, seen[d.DonationID], "duplicate id %s", d.DonationID)
		seen[d.DonationID] = true
	}
}
