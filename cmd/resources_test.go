package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azman-project/azman/pkg/azure"
)

func TestResourcesByTagRejectsMalformedTag(t *testing.T) {
	fake := &fakeExecutor{respond: accountAware(nil)}
	useFakeExecutor(t, fake)

	_, err := executeCommand(rootCmd, "resources", "by-tag", "--tag", "no-equals-sign")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "key=value")
	assert.Empty(t, fake.calls)
}

func TestResourcesList(t *testing.T) {
	fake := &fakeExecutor{
		respond: accountAware(func(command []string, capture bool) azure.Outcome {
			return azure.Outcome{OK: true, Payload: []any{
				map[string]any{
					"name":     "web-01",
					"type":     "Microsoft.Compute/virtualMachines",
					"location": "eastus",
				},
			}}
		}),
	}
	useFakeExecutor(t, fake)

	out, err := executeCommand(rootCmd, "resources", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "web-01")
	assert.Contains(t, out, "Total resources: 1")

	ops := operationCalls(fake)
	require.Len(t, ops, 1)
	assert.Equal(t, []string{"az", "resource", "list"}, ops[0])
}

func TestResourcesListTypeFilter(t *testing.T) {
	fake := &fakeExecutor{
		respond: accountAware(func(command []string, capture bool) azure.Outcome {
			return azure.Outcome{OK: true, Payload: []any{}}
		}),
	}
	useFakeExecutor(t, fake)

	_, err := executeCommand(rootCmd,
		"resources", "list", "--type", "Microsoft.Storage/storageAccounts")

	require.NoError(t, err)
	ops := operationCalls(fake)
	require.Len(t, ops, 1)
	assert.Equal(t, []string{
		"az", "resource", "list",
		"--resource-type", "Microsoft.Storage/storageAccounts",
	}, ops[0])
}

func TestResourcesByTag(t *testing.T) {
	fake := &fakeExecutor{
		respond: accountAware(func(command []string, capture bool) azure.Outcome {
			return azure.Outcome{OK: true, Payload: []any{
				map[string]any{"name": "web-01", "type": "Microsoft.Compute/virtualMachines"},
			}}
		}),
	}
	useFakeExecutor(t, fake)

	out, err := executeCommand(rootCmd, "resources", "by-tag", "--tag", "env=dev")

	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 resources")

	ops := operationCalls(fake)
	require.Len(t, ops, 1)
	assert.Equal(t, []string{"az", "resource", "list", "--tag", "env=dev"}, ops[0])
}
