package azure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVMCommand(t *testing.T) {
	stub := &stubExecutor{
		respond: respondWith(map[string]any{"publicIpAddress": "20.1.2.3"}),
	}
	m, buf := newTestManager(stub)

	ok := m.CreateVM(context.Background(), "web-01", "demo-rg", "Debian11", "Standard_D2s_v3", "admin")

	require.True(t, ok)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{
		"az", "vm", "create",
		"--resource-group", "demo-rg",
		"--name", "web-01",
		"--image", "Debian11",
		"--size", "Standard_D2s_v3",
		"--admin-username", "admin",
		"--generate-ssh-keys",
	}, stub.calls[0])
	assert.Contains(t, buf.String(), "Public IP: 20.1.2.3")
}

func TestCreateVMDefaults(t *testing.T) {
	stub := &stubExecutor{respond: respondWith(map[string]any{})}
	m, buf := newTestManager(stub)

	require.True(t, m.CreateVM(context.Background(), "web-01", "demo-rg", "", "", ""))
	require.Len(t, stub.calls, 1)
	assert.Contains(t, stub.calls[0], DefaultVMImage)
	assert.Contains(t, stub.calls[0], DefaultVMSize)
	assert.Contains(t, stub.calls[0], DefaultVMAdminUser)
	assert.Contains(t, buf.String(), "Public IP: N/A")
}

func TestCreateVMRawPayload(t *testing.T) {
	// az succeeded but returned something undecodable; the operation still
	// counts as performed, there is just no IP to show.
	stub := &stubExecutor{respond: respondWith("WARNING: deprecated image\n")}
	m, buf := newTestManager(stub)

	require.True(t, m.CreateVM(context.Background(), "web-01", "demo-rg", "", "", ""))
	assert.NotContains(t, buf.String(), "Public IP")
}

func TestCreateVMMissingName(t *testing.T) {
	stub := &stubExecutor{}
	m, _ := newTestManager(stub)

	assert.False(t, m.CreateVM(context.Background(), "", "demo-rg", "", "", ""))
	assert.Empty(t, stub.calls)
}

func TestCreateVMFailure(t *testing.T) {
	stub := &stubExecutor{respond: respondFailure(1, "quota exceeded")}
	m, buf := newTestManager(stub)

	assert.False(t, m.CreateVM(context.Background(), "web-01", "demo-rg", "", "", ""))
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestListVMs(t *testing.T) {
	stub := &stubExecutor{
		respond: respondWith([]any{
			map[string]any{
				"name":          "web-01",
				"resourceGroup": "demo-rg",
				"location":      "eastus",
				"powerState":    "VM running",
			},
		}),
	}
	m, buf := newTestManager(stub)

	vms := m.ListVMs(context.Background(), "")

	require.Len(t, vms, 1)
	assert.Equal(t, []string{"az", "vm", "list", "--show-details"}, stub.calls[0])

	out := buf.String()
	assert.Contains(t, out, "web-01")
	assert.Contains(t, out, "VM running")
	assert.Contains(t, out, "Total VMs: 1")
}

func TestListVMsFiltered(t *testing.T) {
	stub := &stubExecutor{respond: respondWith([]any{})}
	m, _ := newTestManager(stub)

	m.ListVMs(context.Background(), "demo-rg")

	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{
		"az", "vm", "list", "--resource-group", "demo-rg", "--show-details",
	}, stub.calls[0])
}

func TestStartVM(t *testing.T) {
	stub := &stubExecutor{}
	m, buf := newTestManager(stub)

	require.True(t, m.StartVM(context.Background(), "web-01", "demo-rg"))
	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{
		"az", "vm", "start", "--name", "web-01", "--resource-group", "demo-rg",
	}, stub.calls[0])
	assert.False(t, stub.captures[0])
	assert.Contains(t, buf.String(), "started successfully")
}

func TestStopVM(t *testing.T) {
	stub := &stubExecutor{}
	m, buf := newTestManager(stub)

	require.True(t, m.StopVM(context.Background(), "web-01", "demo-rg"))
	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{
		"az", "vm", "deallocate", "--name", "web-01", "--resource-group", "demo-rg",
	}, stub.calls[0])
	assert.False(t, stub.captures[0])
	assert.Contains(t, buf.String(), "stopped successfully")
}

func TestStartVMMissingGroup(t *testing.T) {
	stub := &stubExecutor{}
	m, _ := newTestManager(stub)

	assert.False(t, m.StartVM(context.Background(), "web-01", ""))
	assert.False(t, m.StopVM(context.Background(), "web-01", ""))
	assert.Empty(t, stub.calls)
}
