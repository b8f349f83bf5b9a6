package azure

import (
	"context"
	"fmt"

	"github.com/azman-project/azman/pkg/table"
)

// maxResourceRows caps the rendered table; the full payload is still
// returned and counted.
const maxResourceRows = 20

// ListAllResources lists every resource in the subscription, optionally
// filtered by a namespaced type like Microsoft.Compute/virtualMachines.
func (m *Manager) ListAllResources(
	ctx context.Context,
	resourceType string,
) []map[string]any {
	fmt.Fprintln(m.out, "Fetching all resources...")

	args := []string{"resource", "list"}
	if resourceType != "" {
		args = append(args, "--resource-type", resourceType)
	}

	outcome := m.exec.Execute(ctx, m.exec.Command(args...), true)
	if !outcome.OK {
		m.reportFailure("list resources", outcome)
		return nil
	}

	resources := outcome.Seq()
	t := table.NewResourceTable(m.out)
	for i, r := range resources {
		if i >= maxResourceRows {
			break
		}
		t.AddResource(
			getString(r, "name", "N/A"),
			getString(r, "type", "N/A"),
			getString(r, "location", "N/A"),
		)
	}
	t.Render()

	total := len(resources)
	fmt.Fprintf(m.out, "\nTotal resources: %d\n", total)
	if total > maxResourceRows {
		fmt.Fprintf(m.out, "(Showing first %d of %d)\n", maxResourceRows, total)
	}
	return resources
}

// ResourcesByTag lists resources carrying the given tag value.
func (m *Manager) ResourcesByTag(
	ctx context.Context,
	tagName string,
	tagValue string,
) []map[string]any {
	if tagName == "" {
		fmt.Fprintln(m.out, "Error: tag name is required")
		return nil
	}

	fmt.Fprintf(m.out, "Fetching resources with tag %s=%s...\n", tagName, tagValue)

	command := m.exec.Command(
		"resource", "list",
		"--tag", fmt.Sprintf("%s=%s", tagName, tagValue),
	)

	outcome := m.exec.Execute(ctx, command, true)
	if !outcome.OK {
		m.reportFailure("list resources by tag", outcome)
		return nil
	}

	resources := outcome.Seq()
	for _, r := range resources {
		fmt.Fprintf(m.out, "  - %s (%s)\n",
			getString(r, "name", "N/A"),
			getString(r, "type", "N/A"),
		)
	}
	fmt.Fprintf(m.out, "\nFound %d resources\n", len(resources))
	return resources
}
