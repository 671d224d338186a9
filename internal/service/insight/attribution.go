package insight

import (
	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
	"github.com/hospomate/hospomate-backend-go/internal/service/identity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoleShare is the fraction (0-1) of a category's revenue credited to a job title
type RoleShare struct {
	JobTitle string
	Fraction decimal.Decimal
}

// ContributionTable maps a category name to its role shares in configuration order.
type ContributionTable map[string][]RoleShare

// NewContributionTable converts percentage rows into fractions. Rows are not
// normalised; a repeated (category, job title) pair keeps the last row.
func NewContributionTable(rows []contribution.JobRoleContribution) ContributionTable {
	table := make(ContributionTable)
	for _, row := range rows {
		fraction := row.ContributionPercentage.DivRound(hundred, 4)
		shares := table[row.CategoryName]
		replaced := false
		for i := range shares {
			if shares[i].JobTitle == row.JobTitle {
				shares[i].Fraction = fraction
				replaced = true
				break
			}
		}
		if !replaced {
			shares = append(shares, RoleShare{JobTitle: row.JobTitle, Fraction: fraction})
		}
		table[row.CategoryName] = shares
	}
	return table
}

// Attribute redistributes category revenue to the job titles working in the bucket and
// then splits each title's revenue equally between its active shifts.
//
// A title with no active shift gets nothing and its share is not redistributed. A staff
// member with two overlapping shifts in the bucket is credited once per shift.
func Attribute(
	revenueByCategory map[string]decimal.Decimal,
	activeShifts []pos.Shift,
	table ContributionTable,
	directory pos.TeamDirectory,
	resolver *identity.Resolver,
) (map[string]decimal.Decimal, map[string]decimal.Decimal) {
	byJobTitle := make(map[string]decimal.Decimal)
	byStaffName := make(map[string]decimal.Decimal)

	type member struct {
		name string
		role string
	}
	members := make([]member, 0, len(activeShifts))
	staffCountByRole := make(map[string]int)
	for _, shift := range activeShifts {
		name := directory.Name(shift.TeamMemberID)
		role := resolver.JobTitle(name)
		members = append(members, member{name: name, role: role})
		staffCountByRole[role]++
	}

	for category, revenue := range revenueByCategory {
		for _, share := range table[category] {
			if staffCountByRole[share.JobTitle] == 0 {
				continue
			}
			byJobTitle[share.JobTitle] = byJobTitle[share.JobTitle].Add(revenue.Mul(share.Fraction))
		}
	}

	for _, m := range members {
		roleRevenue, ok := byJobTitle[m.role]
		if !ok {
			roleRevenue = decimal.Zero
		}
		share := roleRevenue.DivRound(decimal.NewFromInt(int64(staffCountByRole[m.role])), 2)
		byStaffName[m.name] = byStaffName[m.name].Add(share)
	}

	return byJobTitle, byStaffName
}
