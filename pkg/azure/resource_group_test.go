package azure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResourceGroupCommand(t *testing.T) {
	stub := &stubExecutor{respond: respondWith(map[string]any{"name": "demo"})}
	m, buf := newTestManager(stub)

	ok := m.CreateResourceGroup(context.Background(), "demo", "eastus", map[string]string{
		"env":   "dev",
		"owner": "platform",
	})

	require.True(t, ok)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{
		"az", "group", "create",
		"--name", "demo",
		"--location", "eastus",
		"--tags", "env=dev owner=platform",
	}, stub.calls[0])
	assert.True(t, stub.captures[0])
	assert.Contains(t, buf.String(), `Resource group "demo" created successfully`)
}

func TestCreateResourceGroupNoTags(t *testing.T) {
	stub := &stubExecutor{respond: respondWith(map[string]any{"name": "demo"})}
	m, _ := newTestManager(stub)

	require.True(t, m.CreateResourceGroup(context.Background(), "demo", "westeurope", nil))
	require.Len(t, stub.calls, 1)
	assert.NotContains(t, stub.calls[0], "--tags")
}

func TestCreateResourceGroupMissingName(t *testing.T) {
	stub := &stubExecutor{}
	m, buf := newTestManager(stub)

	ok := m.CreateResourceGroup(context.Background(), "", "eastus", nil)

	assert.False(t, ok)
	assert.Empty(t, stub.calls)
	assert.Contains(t, buf.String(), "required")
}

func TestListResourceGroups(t *testing.T) {
	stub := &stubExecutor{
		respond: respondWith([]any{
			map[string]any{
				"name":     "rg-one",
				"location": "eastus",
				"properties": map[string]any{
					"provisioningState": "Succeeded",
				},
			},
			map[string]any{"name": "rg-two"},
		}),
	}
	m, buf := newTestManager(stub)

	groups := m.ListResourceGroups(context.Background())

	require.Len(t, groups, 2)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{"az", "group", "list"}, stub.calls[0])

	out := buf.String()
	assert.Contains(t, out, "rg-one")
	assert.Contains(t, out, "Succeeded")
	assert.Contains(t, out, "rg-two")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "Total resource groups: 2")
}

func TestListResourceGroupsIdempotent(t *testing.T) {
	payload := []any{
		map[string]any{"name": "rg-one", "location": "eastus"},
	}

	stub := &stubExecutor{respond: respondWith(payload)}
	m, buf := newTestManager(stub)

	m.ListResourceGroups(context.Background())
	first := buf.String()
	buf.Reset()
	m.ListResourceGroups(context.Background())

	assert.Equal(t, first, buf.String())
}

func TestListResourceGroupsFailure(t *testing.T) {
	stub := &stubExecutor{respond: respondFailure(1, "quota exceeded")}
	m, buf := newTestManager(stub)

	groups := m.ListResourceGroups(context.Background())

	assert.Nil(t, groups)
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestDeleteResourceGroupUnconfirmed(t *testing.T) {
	stub := &stubExecutor{}
	m, buf := newTestManager(stub)

	ok := m.DeleteResourceGroup(context.Background(), "demo", false, false)

	assert.False(t, ok)
	assert.Empty(t, stub.calls)
	assert.Contains(t, buf.String(), "cancelled")
}

func TestDeleteResourceGroupConfirmed(t *testing.T) {
	stub := &stubExecutor{}
	m, _ := newTestManager(stub)

	ok := m.DeleteResourceGroup(context.Background(), "demo", true, false)

	require.True(t, ok)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{"az", "group", "delete", "--name", "demo", "--yes"}, stub.calls[0])
	assert.False(t, stub.captures[0])
}

func TestDeleteResourceGroupNoWait(t *testing.T) {
	stub := &stubExecutor{}
	m, buf := newTestManager(stub)

	require.True(t, m.DeleteResourceGroup(context.Background(), "demo", true, true))
	require.Len(t, stub.calls, 1)
	assert.Contains(t, stub.calls[0], "--no-wait")
	assert.Contains(t, buf.String(), "background")

	stub.reset()
	require.True(t, m.DeleteResourceGroup(context.Background(), "demo", true, false))
	assert.NotContains(t, stub.calls[0], "--no-wait")
}

func TestDeleteResourceGroupFailure(t *testing.T) {
	stub := &stubExecutor{respond: respondFailure(1, "group not found")}
	m, buf := newTestManager(stub)

	ok := m.DeleteResourceGroup(context.Background(), "demo", true, false)

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "group not found")
}

func TestFormatTagPairsDeterministic(t *testing.T) {
	tags := map[string]string{"c": "3", "a": "1", "b": "2"}
	assert.Equal(t, "a=1 b=2 c=3", formatTagPairs(tags))
}
