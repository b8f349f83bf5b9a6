package azure

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/azman-project/azman/pkg/logger"
	"github.com/azman-project/azman/pkg/table"
)

// CreateResourceGroup creates a resource group in the given region. Name and
// location are checked for presence only; az is the authority on legality.
func (m *Manager) CreateResourceGroup(
	ctx context.Context,
	name string,
	location string,
	tags map[string]string,
) bool {
	log := logger.Get()

	if name == "" || location == "" {
		fmt.Fprintln(m.out, "Error: resource group name and location are required")
		return false
	}

	fmt.Fprintf(m.out, "Creating resource group %q in %s...\n", name, location)

	command := m.exec.Command("group", "create", "--name", name, "--location", location)
	if len(tags) > 0 {
		command = append(command, "--tags", formatTagPairs(tags))
	}

	outcome := m.exec.Execute(ctx, command, true)
	if !outcome.OK {
		m.reportFailure("create resource group "+name, outcome)
		return false
	}

	log.Infof("created resource group %s in %s", name, location)
	fmt.Fprintf(m.out, "Resource group %q created successfully\n", name)
	return true
}

// ListResourceGroups prints a name/location/state table and returns the raw
// payload for programmatic reuse. The table is display only; callers that
// need the full records use the returned mappings.
func (m *Manager) ListResourceGroups(ctx context.Context) []map[string]any {
	fmt.Fprintln(m.out, "Fetching resource groups...")

	outcome := m.exec.Execute(ctx, m.exec.Command("group", "list"), true)
	if !outcome.OK {
		m.reportFailure("list resource groups", outcome)
		return nil
	}

	groups := outcome.Seq()
	t := table.NewResourceGroupTable(m.out)
	for _, rg := range groups {
		t.AddResourceGroup(
			getString(rg, "name", "N/A"),
			getString(rg, "location", "N/A"),
			getString(getMap(rg, "properties"), "provisioningState", "N/A"),
		)
	}
	t.Render()
	fmt.Fprintf(m.out, "\nTotal resource groups: %d\n", len(groups))
	return groups
}

// DeleteResourceGroup deletes a group and everything in it. The confirmation
// must already have been collected by the caller; without it the executor is
// never reached. noWait asks az to return before the deletion completes.
func (m *Manager) DeleteResourceGroup(
	ctx context.Context,
	name string,
	confirmed bool,
	noWait bool,
) bool {
	log := logger.Get()

	if name == "" {
		fmt.Fprintln(m.out, "Error: resource group name is required")
		return false
	}
	if !confirmed {
		fmt.Fprintf(m.out, "Deletion of %q cancelled\n", name)
		return false
	}

	fmt.Fprintf(m.out, "Deleting resource group %q and all its resources...\n", name)

	command := m.exec.Command("group", "delete", "--name", name, "--yes")
	if noWait {
		command = append(command, "--no-wait")
	}

	outcome := m.exec.Execute(ctx, command, false)
	if !outcome.OK {
		m.reportFailure("delete resource group "+name, outcome)
		return false
	}

	log.Infof("deletion of resource group %s issued (noWait=%v)", name, noWait)
	if noWait {
		fmt.Fprintf(m.out, "Deletion of %q initiated, continuing in the background\n", name)
	} else {
		fmt.Fprintf(m.out, "Resource group %q deleted successfully\n", name)
	}
	return true
}

// formatTagPairs renders tags as the space-separated key=value string az
// expects. Keys are sorted so the built command is deterministic.
func formatTagPairs(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, tags[k]))
	}
	return strings.Join(pairs, " ")
}
