package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhfp/household-projector/internal/domain"
)

func openTestStore(t *testing.T) *ScenarioStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func storedProfile() *domain.HouseholdProfile {
	return &domain.HouseholdProfile{
		Primary: domain.Person{Name: "Alex", Age: 70},
		IncomeStreams: []domain.IncomeStream{
			{Name: "social security", Monthly: decimal.NewFromInt(3662), Kind: domain.StreamSocialSecurity},
		},
		ExpenseStreams: []domain.ExpenseStream{
			{Name: "living", Monthly: decimal.NewFromInt(9000)},
		},
		Accounts: domain.Accounts{
			TaxDeferred: decimal.NewFromInt(1850000),
			Taxable:     decimal.NewFromInt(25000),
		},
		Assumptions: domain.Assumptions{
			IncomeTaxRate:        decimal.NewFromFloat(0.25),
			RMDTaxRate:           decimal.NewFromFloat(0.25),
			InflationRate:        decimal.NewFromFloat(0.025),
			InvestmentReturnRate: decimal.NewFromFloat(0.05),
			SimulationYears:      14,
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("baseline", storedProfile()))

	loaded, err := store.Load("baseline")
	require.NoError(t, err)
	assert.Equal(t, "Alex", loaded.Primary.Name)
	assert.Equal(t, 70, loaded.Primary.Age)
	assert.True(t, loaded.Accounts.TaxDeferred.Equal(decimal.NewFromInt(1850000)))
	assert.Equal(t, 14, loaded.Assumptions.SimulationYears)
	require.Len(t, loaded.IncomeStreams, 1)
	assert.Equal(t, domain.StreamSocialSecurity, loaded.IncomeStreams[0].Kind)
}

func TestSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("baseline", storedProfile()))

	updated := storedProfile()
	updated.Primary.Age = 71
	require.NoError(t, store.Save("baseline", updated))

	loaded, err := store.Load("baseline")
	require.NoError(t, err)
	assert.Equal(t, 71, loaded.Primary.Age)

	infos, err := store.List()
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestSaveRequiresName(t *testing.T) {
	store := openTestStore(t)
	err := store.Save("", storedProfile())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadMissing(t *testing.T) {
	store := openTestStore(t)
	profile, err := store.Load("no-such-scenario")
	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.Contains(t, err.Error(), "not found")
}

func TestList(t *testing.T) {
	store := openTestStore(t)

	infos, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, infos)

	require.NoError(t, store.Save("first", storedProfile()))
	require.NoError(t, store.Save("second", storedProfile()))

	infos, err = store.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	names := []string{infos[0].Name, infos[1].Name}
	assert.Contains(t, names, "first")
	assert.Contains(t, names, "second")
	for _, info := range infos {
		assert.False(t, info.UpdatedAt.IsZero())
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("baseline", storedProfile()))
	require.NoError(t, store.Delete("baseline"))

	_, err := store.Load("baseline")
	assert.Error(t, err)

	// Deleting a missing name is a no-op.
	assert.NoError(t, store.Delete("baseline"))
}
