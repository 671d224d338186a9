package insight

import (
	"testing"
	"time"

	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/service/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributionRow(category, title, pct string) contribution.JobRoleContribution {
	return contribution.JobRoleContribution{
		CategoryName:           category,
		JobTitle:               title,
		ContributionPercentage: dec(pct),
	}
}

func testStaff() []store.Staff {
	return []store.Staff{
		{ID: "1", Name: "Ann", JobTitle: strPtr("Bartender")},
		{ID: "2", Name: "Bob", JobTitle: strPtr("Waiter")},
		{ID: "3", Name: "Cara", JobTitle: strPtr("Bartender")},
		{ID: "4", Name: "Dan"},
	}
}

func activeShift(id, teamMemberID string) pos.Shift {
	return shiftAt(id, teamMemberID, bucketStart, timePtr(bucketStart.Add(time.Hour)))
}

func TestNewContributionTable(t *testing.T) {
	table := NewContributionTable([]contribution.JobRoleContribution{
		contributionRow("Drinks", "Bartender", "60"),
		contributionRow("Drinks", "Waiter", "40"),
		contributionRow("Food", "Chef", "33.33"),
		contributionRow("Drinks", "Bartender", "70"),
	})

	require.Len(t, table["Drinks"], 2)
	assert.Equal(t, "Bartender", table["Drinks"][0].JobTitle)
	assert.True(t, dec("0.70").Equal(table["Drinks"][0].Fraction))
	assert.True(t, dec("0.40").Equal(table["Drinks"][1].Fraction))
	assert.True(t, dec("0.3333").Equal(table["Food"][0].Fraction))
}

func TestAttribute_OnlyActiveRolesAreCredited(t *testing.T) {
	table := NewContributionTable([]contribution.JobRoleContribution{
		contributionRow("Drinks", "Bartender", "60"),
		contributionRow("Drinks", "Waiter", "40"),
	})
	directory := pos.TeamDirectory{"tm-ann": "Ann Lee"}

	byTitle, byStaff := Attribute(
		map[string]decimal.Decimal{"Drinks": dec("100.00")},
		[]pos.Shift{activeShift("s1", "tm-ann")},
		table,
		directory,
		identity.NewResolver(testStaff()),
	)

	assert.True(t, dec("60.00").Equal(byTitle["Bartender"]))
	_, waiterCredited := byTitle["Waiter"]
	assert.False(t, waiterCredited)
	assert.True(t, dec("60.00").Equal(byStaff["Ann Lee"]))
}

func TestAttribute_EqualSplitWithinRole(t *testing.T) {
	table := NewContributionTable([]contribution.JobRoleContribution{
		contributionRow("Drinks", "Bartender", "100"),
	})
	directory := pos.TeamDirectory{"tm-ann": "Ann Lee", "tm-cara": "Cara Diaz"}

	byTitle, byStaff := Attribute(
		map[string]decimal.Decimal{"Drinks": dec("10.00")},
		[]pos.Shift{activeShift("s1", "tm-ann"), activeShift("s2", "tm-cara")},
		table,
		directory,
		identity.NewResolver(testStaff()),
	)

	assert.True(t, dec("10.00").Equal(byTitle["Bartender"]))
	assert.True(t, dec("5.00").Equal(byStaff["Ann Lee"]))
	assert.True(t, dec("5.00").Equal(byStaff["Cara Diaz"]))
}

func TestAttribute_HalfUpRounding(t *testing.T) {
	table := NewContributionTable([]contribution.JobRoleContribution{
		contributionRow("Food", "Bartender", "50"),
	})
	directory := pos.TeamDirectory{"a": "Ann", "c": "Cara"}

	byTitle, byStaff := Attribute(
		map[string]decimal.Decimal{"Food": dec("0.05")},
		[]pos.Shift{activeShift("s1", "a"), activeShift("s2", "c")},
		table,
		directory,
		identity.NewResolver(testStaff()),
	)

	// role credit keeps full precision; only the per-person split is rounded
	assert.True(t, dec("0.025").Equal(byTitle["Bartender"]), "title %s", byTitle["Bartender"])
	assert.True(t, dec("0.01").Equal(byStaff["Ann"]), "staff %s", byStaff["Ann"])
	assert.True(t, dec("0.01").Equal(byStaff["Cara"]), "staff %s", byStaff["Cara"])
}

func TestAttribute_UnmatchedStaffAreUnassigned(t *testing.T) {
	table := NewContributionTable([]contribution.JobRoleContribution{
		contributionRow("Drinks", identity.UnassignedRole, "25"),
	})
	directory := pos.TeamDirectory{"tm-x": "Zed Quinn", "tm-dan": "Dan Ho"}

	byTitle, byStaff := Attribute(
		map[string]decimal.Decimal{"Drinks": dec("40.00")},
		[]pos.Shift{activeShift("s1", "tm-x"), activeShift("s2", "tm-dan")},
		table,
		directory,
		identity.NewResolver(testStaff()),
	)

	assert.True(t, dec("10.00").Equal(byTitle[identity.UnassignedRole]))
	assert.True(t, dec("5.00").Equal(byStaff["Zed Quinn"]))
	assert.True(t, dec("5.00").Equal(byStaff["Dan Ho"]))
}

func TestAttribute_RoleWithoutRevenueGetsZero(t *testing.T) {
	directory := pos.TeamDirectory{"tm-bob": "Bob Ray"}

	byTitle, byStaff := Attribute(
		map[string]decimal.Decimal{"Drinks": dec("40.00")},
		[]pos.Shift{activeShift("s1", "tm-bob")},
		ContributionTable{},
		directory,
		identity.NewResolver(testStaff()),
	)

	assert.Empty(t, byTitle)
	require.Contains(t, byStaff, "Bob Ray")
	assert.True(t, byStaff["Bob Ray"].IsZero())
}

func TestAttribute_OverlappingShiftsCreditTwice(t *testing.T) {
	table := NewContributionTable([]contribution.JobRoleContribution{
		contributionRow("Drinks", "Bartender", "100"),
	})
	directory := pos.TeamDirectory{"tm-ann": "Ann Lee"}

	_, byStaff := Attribute(
		map[string]decimal.Decimal{"Drinks": dec("20.00")},
		[]pos.Shift{activeShift("s1", "tm-ann"), activeShift("s2", "tm-ann")},
		table,
		directory,
		identity.NewResolver(testStaff()),
	)

	assert.True(t, dec("20.00").Equal(byStaff["Ann Lee"]))
}

func TestAttribute_PercentagesAreNotNormalised(t *testing.T) {
	table := NewContributionTable([]contribution.JobRoleContribution{
		contributionRow("Drinks", "Bartender", "80"),
		contributionRow("Drinks", "Waiter", "80"),
	})
	directory := pos.TeamDirectory{"a": "Ann", "b": "Bob"}

	byTitle, _ := Attribute(
		map[string]decimal.Decimal{"Drinks": dec("100.00")},
		[]pos.Shift{activeShift("s1", "a"), activeShift("s2", "b")},
		table,
		directory,
		identity.NewResolver(testStaff()),
	)

	total := byTitle["Bartender"].Add(byTitle["Waiter"])
	assert.True(t, dec("160.00").Equal(total), "total %s", total)
}
