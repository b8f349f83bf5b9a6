package azure

import (
	"context"
	"fmt"

	"github.com/azman-project/azman/pkg/logger"
	"github.com/azman-project/azman/pkg/table"
)

// DefaultStorageSKU is applied when the caller does not pick one.
const DefaultStorageSKU = "Standard_LRS"

// CreateStorageAccount creates a storage account inside an existing resource
// group. az enforces the global-uniqueness and character rules for the name.
func (m *Manager) CreateStorageAccount(
	ctx context.Context,
	name string,
	resourceGroup string,
	location string,
	sku string,
) bool {
	log := logger.Get()

	if name == "" || resourceGroup == "" {
		fmt.Fprintln(m.out, "Error: storage account name and resource group are required")
		return false
	}
	if sku == "" {
		sku = DefaultStorageSKU
	}

	fmt.Fprintf(m.out, "Creating storage account %q...\n", name)
	fmt.Fprintf(m.out, "  Resource Group: %s\n", resourceGroup)
	fmt.Fprintf(m.out, "  Location: %s\n", location)
	fmt.Fprintf(m.out, "  SKU: %s\n", sku)

	command := m.exec.Command(
		"storage", "account", "create",
		"--name", name,
		"--resource-group", resourceGroup,
		"--location", location,
		"--sku", sku,
	)

	outcome := m.exec.Execute(ctx, command, true)
	if !outcome.OK {
		m.reportFailure("create storage account "+name, outcome)
		return false
	}

	log.Infof("created storage account %s in %s", name, resourceGroup)
	fmt.Fprintf(m.out, "Storage account %q created successfully\n", name)
	return true
}

// ListStorageAccounts lists storage accounts, optionally narrowed to one
// resource group.
func (m *Manager) ListStorageAccounts(
	ctx context.Context,
	resourceGroup string,
) []map[string]any {
	fmt.Fprintln(m.out, "Fetching storage accounts...")

	args := []string{"storage", "account", "list"}
	if resourceGroup != "" {
		args = append(args, "--resource-group", resourceGroup)
	}

	outcome := m.exec.Execute(ctx, m.exec.Command(args...), true)
	if !outcome.OK {
		m.reportFailure("list storage accounts", outcome)
		return nil
	}

	accounts := outcome.Seq()
	t := table.NewStorageAccountTable(m.out)
	for _, sa := range accounts {
		t.AddStorageAccount(
			getString(sa, "name", "N/A"),
			getString(sa, "resourceGroup", "N/A"),
			getString(sa, "location", "N/A"),
			getString(getMap(sa, "sku"), "name", "N/A"),
		)
	}
	t.Render()
	fmt.Fprintf(m.out, "\nTotal storage accounts: %d\n", len(accounts))
	return accounts
}

// CreateBlobContainer creates a blob container in an existing storage
// account, using the caller's ambient az credentials for auth.
func (m *Manager) CreateBlobContainer(
	ctx context.Context,
	accountName string,
	containerName string,
) bool {
	log := logger.Get()

	if accountName == "" || containerName == "" {
		fmt.Fprintln(m.out, "Error: storage account and container names are required")
		return false
	}

	fmt.Fprintf(m.out, "Creating container %q in account %q...\n", containerName, accountName)

	command := m.exec.Command(
		"storage", "container", "create",
		"--name", containerName,
		"--account-name", accountName,
	)

	outcome := m.exec.Execute(ctx, command, true)
	if !outcome.OK {
		m.reportFailure("create blob container "+containerName, outcome)
		return false
	}

	log.Infof("created blob container %s in %s", containerName, accountName)
	fmt.Fprintf(m.out, "Container %q created successfully\n", containerName)
	return true
}
