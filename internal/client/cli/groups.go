package cli

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/splits-cli/internal/client/models"
)

// ListGroups fetches and prints the user's groups. The printed numbers are
// what 'open <number>' accepts.
func (a *App) ListGroups(ctx context.Context) error {
	groups, err := a.api.Groups(ctx)
	if err != nil {
		reportErr(err)
		return err
	}
	a.groups = groups

	if len(groups) == 0 {
		printlnFn("No groups yet. Type 'create' to start splitting expenses with friends!")
		return nil
	}
	for i, g := range groups {
		printfFn("%d. %s (%d members, %d expenses)\n", i+1, g.GroupName, len(g.Members), len(g.Expenses))
	}
	return nil
}

// CreateGroup prompts for a group name and member contact numbers and
// creates the group. At least one numeric contact is required; validation
// happens before any network call.
func (a *App) CreateGroup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Group name", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return failValidation("Please enter a group name")
	}

	lines, err := getLines(a.reader, "Member contact numbers, one per line", os.Stdout)
	if err != nil {
		return err
	}

	contacts := make([]int64, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return failValidation("Contact numbers must be numeric: " + line)
		}
		contacts = append(contacts, n)
	}
	if len(contacts) == 0 {
		return failValidation("Please add at least one member")
	}

	if err := a.api.CreateGroup(ctx, name, contacts); err != nil {
		reportErr(err)
		return err
	}
	printlnFn("Group created!")
	return a.ListGroups(ctx)
}

// OpenGroup switches to the group screen. arg is a number from the last
// 'list' output, or a raw group id.
func (a *App) OpenGroup(ctx context.Context, arg string) error {
	groupID := arg
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(a.groups) {
		groupID = a.groups[n-1].ID
	}

	group, activity, err := a.fetchGroupData(ctx, groupID)
	if err != nil {
		reportErr(err)
		return err
	}

	a.group, a.activity = group, activity
	a.screen = screenGroup
	printfFn("%s: %d members, %d expenses\n", group.GroupName, len(group.Members), len(activity.Expenses))
	return nil
}

// Refresh refetches the open group's data.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.refreshGroupData(ctx); err != nil {
		return err
	}
	printlnFn("Refreshed.")
	return nil
}

// Back returns from the group screen to the dashboard.
func (a *App) Back() {
	a.group, a.activity = nil, nil
	a.screen = screenDashboard
}

// fetchGroupData loads the group detail and its activity concurrently,
// the way the web client issued both requests in parallel.
func (a *App) fetchGroupData(ctx context.Context, groupID string) (*models.Group, *models.GroupActivity, error) {
	var (
		wg          sync.WaitGroup
		group       *models.Group
		activity    *models.GroupActivity
		groupErr    error
		activityErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		group, groupErr = a.api.GroupByID(ctx, groupID)
	}()
	go func() {
		defer wg.Done()
		activity, activityErr = a.api.Expenses(ctx, groupID)
	}()
	wg.Wait()

	if groupErr != nil {
		return nil, nil, groupErr
	}
	if activityErr != nil {
		return nil, nil, activityErr
	}
	return group, activity, nil
}

func (a *App) refreshGroupData(ctx context.Context) error {
	group, activity, err := a.fetchGroupData(ctx, a.group.ID)
	if err != nil {
		reportErr(err)
		return err
	}
	a.group, a.activity = group, activity
	return nil
}
