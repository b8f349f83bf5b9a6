package table

import (
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	NameWidth     = 30
	GroupWidth    = 30
	LocationWidth = 15
	TypeWidth     = 40
	StateWidth    = 20
	SKUWidth      = 20
)

// Table is a thin wrapper around tablewriter configured with the borderless
// style used across the tool.
type Table struct {
	table  *tablewriter.Table
	writer io.Writer
}

func New(w io.Writer, headers []string) *Table {
	if w == nil {
		w = os.Stdout
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return &Table{table: table, writer: w}
}

func (t *Table) Append(row []string) {
	t.table.Append(row)
}

func (t *Table) Render() {
	t.table.Render()
}

// NewResourceGroupTable lists resource groups by name, region and
// provisioning state.
func NewResourceGroupTable(w io.Writer) *Table {
	return New(w, []string{"Name", "Location", "Status"})
}

func (t *Table) AddResourceGroup(name, location, state string) {
	t.Append([]string{
		Truncate(name, NameWidth),
		Truncate(location, LocationWidth),
		Truncate(state, StateWidth),
	})
}

func NewStorageAccountTable(w io.Writer) *Table {
	return New(w, []string{"Name", "Resource Group", "Location", "SKU"})
}

func (t *Table) AddStorageAccount(name, resourceGroup, location, sku string) {
	t.Append([]string{
		Truncate(name, NameWidth),
		Truncate(resourceGroup, GroupWidth),
		Truncate(location, LocationWidth),
		Truncate(sku, SKUWidth),
	})
}

func NewVMTable(w io.Writer) *Table {
	return New(w, []string{"Name", "Resource Group", "Location", "Power State"})
}

func (t *Table) AddVM(name, resourceGroup, location, powerState string) {
	t.Append([]string{
		Truncate(name, NameWidth),
		Truncate(resourceGroup, GroupWidth),
		Truncate(location, LocationWidth),
		Truncate(powerState, StateWidth),
	})
}

func NewResourceTable(w io.Writer) *Table {
	return New(w, []string{"Name", "Type", "Location"})
}

func (t *Table) AddResource(name, resourceType, location string) {
	t.Append([]string{
		Truncate(name, NameWidth),
		Truncate(ShortenResourceType(resourceType), TypeWidth),
		Truncate(location, LocationWidth),
	})
}

// ShortenResourceType keeps the trailing segment of a namespaced type like
// Microsoft.Compute/virtualMachines.
func ShortenResourceType(resourceType string) string {
	parts := strings.Split(resourceType, "/")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return resourceType
}

func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
