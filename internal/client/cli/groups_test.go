package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/splits-cli/internal/client/models"
)

func TestListGroupsEmpty(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{})
	signIn(t, a, "Alice", "111")

	require.NoError(t, a.ListGroups(context.Background()))

	assert.Contains(t, out.String(), "No groups yet.")
}

func TestListGroupsNumbered(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{groups: []models.Group{
		{ID: "g1", GroupName: "Trip", Members: []models.Member{{Name: "Alice"}, {Name: "Bob"}}},
		{ID: "g2", GroupName: "Flat"},
	}}
	a := newTestApp(t, fake)
	signIn(t, a, "Alice", "111")

	require.NoError(t, a.ListGroups(context.Background()))

	assert.Contains(t, out.String(), "1. Trip (2 members, 0 expenses)")
	assert.Contains(t, out.String(), "2. Flat (0 members, 0 expenses)")
	assert.Len(t, a.groups, 2)
}

func TestCreateGroupValidation(t *testing.T) {
	tests := []struct {
		name     string
		groupN   string
		contacts []string
		wantMsg  string
	}{
		{"empty name", " ", []string{"111"}, "Please enter a group name"},
		{"non-numeric contact", "Trip", []string{"111", "abc"}, "Contact numbers must be numeric: abc"},
		{"no members", "Trip", nil, "Please add at least one member"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t)
			fake := &fakeAPI{}
			a := newTestApp(t, fake)
			signIn(t, a, "Alice", "111")
			stubTextInputs(t, tt.groupN)
			stubLineInputs(t, tt.contacts)

			err := a.CreateGroup(context.Background())

			require.Error(t, err)
			assert.False(t, fake.called("CreateGroup"))
			assert.Contains(t, out.String(), tt.wantMsg)
		})
	}
}

func TestCreateGroupSuccess(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{}
	a := newTestApp(t, fake)
	signIn(t, a, "Alice", "111")
	stubTextInputs(t, "Trip")
	stubLineInputs(t, []string{"111", "222"})

	require.NoError(t, a.CreateGroup(context.Background()))

	assert.Equal(t, "Trip", fake.createdGroupName)
	assert.Equal(t, []int64{111, 222}, fake.createdContacts)
	assert.True(t, fake.called("Groups"), "list should refresh after create")
	assert.Contains(t, out.String(), "Group created!")
}

func TestOpenGroupByNumber(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{
		group:    &models.Group{ID: "g2", GroupName: "Flat", Members: []models.Member{{Name: "Alice"}}},
		activity: &models.GroupActivity{},
	}
	a := newTestApp(t, fake)
	signIn(t, a, "Alice", "111")
	a.groups = []models.Group{{ID: "g1"}, {ID: "g2"}}

	require.NoError(t, a.OpenGroup(context.Background(), "2"))

	assert.True(t, fake.called("GroupByID:g2"))
	assert.True(t, fake.called("Expenses:g2"))
	assert.Equal(t, screenGroup, a.activeScreen())
	assert.Contains(t, out.String(), "Flat: 1 members, 0 expenses")
}

func TestOpenGroupByRawID(t *testing.T) {
	captureOutput(t)
	fake := &fakeAPI{
		group:    &models.Group{ID: "abc123", GroupName: "Flat"},
		activity: &models.GroupActivity{},
	}
	a := newTestApp(t, fake)
	signIn(t, a, "Alice", "111")

	require.NoError(t, a.OpenGroup(context.Background(), "abc123"))

	assert.True(t, fake.called("GroupByID:abc123"))
	assert.Equal(t, screenGroup, a.activeScreen())
}

func TestBack(t *testing.T) {
	a := newTestApp(t, &fakeAPI{})
	signIn(t, a, "Alice", "111")
	a.screen = screenGroup
	a.group = &models.Group{ID: "g1"}
	a.activity = &models.GroupActivity{}

	a.Back()

	assert.Equal(t, screenDashboard, a.activeScreen())
	assert.Nil(t, a.group)
	assert.Nil(t, a.activity)
}
