package azure

import (
	"context"
	"fmt"

	"github.com/azman-project/azman/pkg/logger"
	"github.com/azman-project/azman/pkg/table"
)

const (
	DefaultVMImage     = "UbuntuLTS"
	DefaultVMSize      = "Standard_B1s"
	DefaultVMAdminUser = "azureuser"
)

// CreateVM provisions a virtual machine and prints its public IP when az
// hands one back. The call blocks until az returns, which can take minutes.
func (m *Manager) CreateVM(
	ctx context.Context,
	name string,
	resourceGroup string,
	image string,
	size string,
	adminUsername string,
) bool {
	log := logger.Get()

	if name == "" || resourceGroup == "" {
		fmt.Fprintln(m.out, "Error: VM name and resource group are required")
		return false
	}
	if image == "" {
		image = DefaultVMImage
	}
	if size == "" {
		size = DefaultVMSize
	}
	if adminUsername == "" {
		adminUsername = DefaultVMAdminUser
	}

	fmt.Fprintf(m.out, "Creating virtual machine %q...\n", name)
	fmt.Fprintf(m.out, "  Resource Group: %s\n", resourceGroup)
	fmt.Fprintf(m.out, "  Image: %s\n", image)
	fmt.Fprintf(m.out, "  Size: %s\n", size)

	command := m.exec.Command(
		"vm", "create",
		"--resource-group", resourceGroup,
		"--name", name,
		"--image", image,
		"--size", size,
		"--admin-username", adminUsername,
		"--generate-ssh-keys",
	)

	outcome := m.exec.Execute(ctx, command, true)
	if !outcome.OK {
		m.reportFailure("create virtual machine "+name, outcome)
		return false
	}

	log.Infof("created virtual machine %s in %s", name, resourceGroup)
	fmt.Fprintf(m.out, "Virtual machine %q created successfully\n", name)
	if vm := outcome.Map(); vm != nil {
		fmt.Fprintf(m.out, "  Public IP: %s\n", getString(vm, "publicIpAddress", "N/A"))
	}
	return true
}

// ListVMs lists virtual machines with runtime details, optionally narrowed
// to one resource group.
func (m *Manager) ListVMs(ctx context.Context, resourceGroup string) []map[string]any {
	fmt.Fprintln(m.out, "Fetching virtual machines...")

	args := []string{"vm", "list"}
	if resourceGroup != "" {
		args = append(args, "--resource-group", resourceGroup)
	}
	// powerState only appears with the details view.
	args = append(args, "--show-details")

	outcome := m.exec.Execute(ctx, m.exec.Command(args...), true)
	if !outcome.OK {
		m.reportFailure("list virtual machines", outcome)
		return nil
	}

	vms := outcome.Seq()
	t := table.NewVMTable(m.out)
	for _, vm := range vms {
		t.AddVM(
			getString(vm, "name", "N/A"),
			getString(vm, "resourceGroup", "N/A"),
			getString(vm, "location", "N/A"),
			getString(vm, "powerState", "N/A"),
		)
	}
	t.Render()
	fmt.Fprintf(m.out, "\nTotal VMs: %d\n", len(vms))
	return vms
}

// StartVM powers a stopped VM back on.
func (m *Manager) StartVM(ctx context.Context, name, resourceGroup string) bool {
	log := logger.Get()

	if name == "" || resourceGroup == "" {
		fmt.Fprintln(m.out, "Error: VM name and resource group are required")
		return false
	}

	fmt.Fprintf(m.out, "Starting VM %q...\n", name)

	command := m.exec.Command("vm", "start", "--name", name, "--resource-group", resourceGroup)
	outcome := m.exec.Execute(ctx, command, false)
	if !outcome.OK {
		m.reportFailure("start virtual machine "+name, outcome)
		return false
	}

	log.Infof("started virtual machine %s", name)
	fmt.Fprintf(m.out, "VM %q started successfully\n", name)
	return true
}

// StopVM deallocates a VM so it stops incurring compute charges.
func (m *Manager) StopVM(ctx context.Context, name, resourceGroup string) bool {
	log := logger.Get()

	if name == "" || resourceGroup == "" {
		fmt.Fprintln(m.out, "Error: VM name and resource group are required")
		return false
	}

	fmt.Fprintf(m.out, "Stopping VM %q...\n", name)

	command := m.exec.Command("vm", "deallocate", "--name", name, "--resource-group", resourceGroup)
	outcome := m.exec.Execute(ctx, command, false)
	if !outcome.OK {
		m.reportFailure("stop virtual machine "+name, outcome)
		return false
	}

	log.Infof("deallocated virtual machine %s", name)
	fmt.Fprintf(m.out, "VM %q stopped successfully\n", name)
	return true
}
