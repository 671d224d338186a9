package identity

import (
	"testing"

	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestResolveJobTitle(t *testing.T) {
	staff := []store.Staff{
		{ID: "1", Name: "Ann", JobTitle: ptr("Bartender")},
		{ID: "2", Name: "  Mia Wong ", JobTitle: ptr("Manager")},
		{ID: "3", Name: "Bob", JobTitle: nil},
		{ID: "4", Name: "", JobTitle: ptr("Chef")},
	}

	cases := []struct {
		name        string
		displayName string
		want        string
	}{
		{"exact match", "Ann", "Bartender"},
		{"case insensitive substring", "ANN LEE", "Bartender"},
		{"trimmed local name", "mia wong", "Manager"},
		{"first match wins in list order", "Joanne", "Bartender"}, // "ann" is inside "joanne"
		{"match without job title", "Bob Jones", UnassignedRole},
		{"empty local name never matches", "Carl", UnassignedRole},
		{"no match", "Zed", UnassignedRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveJobTitle(tc.displayName, staff))
		})
	}
}

func TestResolveJobTitle_OrderDependent(t *testing.T) {
	manager := store.Staff{ID: "1", Name: "Sam", JobTitle: ptr("Manager")}
	barista := store.Staff{ID: "2", Name: "Samantha", JobTitle: ptr("Barista")}

	assert.Equal(t, "Manager", ResolveJobTitle("Samantha Reed", []store.Staff{manager, barista}))
	assert.Equal(t, "Barista", ResolveJobTitle("Samantha Reed", []store.Staff{barista, manager}))
}

func TestResolver_Memoises(t *testing.T) {
	staff := []store.Staff{{ID: "1", Name: "Ann", JobTitle: ptr("Bartender")}}
	r := NewResolver(staff)

	assert.Equal(t, "Bartender", r.JobTitle("Ann Lee"))
	staff[0].JobTitle = ptr("Chef")
	assert.Equal(t, "Bartender", r.JobTitle("Ann Lee"))
	assert.Equal(t, UnassignedRole, r.JobTitle("Nobody"))
}
