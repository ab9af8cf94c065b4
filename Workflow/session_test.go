package Workflow

import (
	"testing"

	"Evexia/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawFromPackageNumbersAndBills(t *testing.T) {
	pkg := Models.Package{
		SessionsTotal:   10,
		SessionsUsed:    3,
		PricePerSession: 80,
		Status:          Models.PackageActive,
	}

	draw, ok := DrawFromPackage(pkg)
	require.True(t, ok)
	assert.Equal(t, uint(4), draw.SessionNumber)
	assert.Equal(t, 80.0, draw.BillAmount)
	assert.Equal(t, Models.PackageActive, draw.Status)
}

func TestDrawFromPackageCompletesOnLastSession(t *testing.T) {
	pkg := Models.Package{
		SessionsTotal:   5,
		SessionsUsed:    4,
		PricePerSession: 60,
		Status:          Models.PackageActive,
	}

	draw, ok := DrawFromPackage(pkg)
	require.True(t, ok)
	assert.Equal(t, uint(5), draw.SessionNumber)
	assert.Equal(t, Models.PackageCompleted, draw.Status)
}

func TestDrawFromPackageRefusesFullPackage(t *testing.T) {
	pkg := Models.Package{
		SessionsTotal: 5,
		SessionsUsed:  5,
		Status:        Models.PackageActive,
	}

	_, ok := DrawFromPackage(pkg)
	assert.False(t, ok)
}

func TestDrawFromPackageRefusesInactivePackage(t *testing.T) {
	for _, status := range []string{Models.PackageCompleted, Models.PackageExpired} {
		pkg := Models.Package{
			SessionsTotal: 5,
			SessionsUsed:  1,
			Status:        status,
		}
		_, ok := DrawFromPackage(pkg)
		assert.False(t, ok, status)
	}
}

func TestDrawFromPackageNeverExceedsTotal(t *testing.T) {
	pkg := Models.Package{
		SessionsTotal:   3,
		PricePerSession: 50,
		Status:          Models.PackageActive,
	}

	for {
		draw, ok := DrawFromPackage(pkg)
		if !ok {
			break
		}
		require.LessOrEqual(t, draw.SessionNumber, pkg.SessionsTotal)
		pkg.SessionsUsed = draw.SessionNumber
		pkg.Status = draw.Status
	}
	assert.Equal(t, uint(3), pkg.SessionsUsed)
	assert.Equal(t, Models.PackageCompleted, pkg.Status)
}
