package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	resourceType string
	resourceTag  string
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Query resources across the subscription",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all resources, optionally filtered by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		m.ListAllResources(cmd.Context(), resourceType)
		return nil
	},
}

var resourcesByTagCmd = &cobra.Command{
	Use:   "by-tag",
	Short: "List resources carrying a tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value, ok := strings.Cut(resourceTag, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid tag %q: expected key=value", resourceTag)
		}
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		m.ResourcesByTag(cmd.Context(), key, value)
		return nil
	},
}

func GetResourcesCmd() *cobra.Command {
	resourcesListCmd.Flags().
		StringVar(&resourceType, "type", "", "Resource type filter (e.g. Microsoft.Compute/virtualMachines)")

	resourcesByTagCmd.Flags().StringVar(&resourceTag, "tag", "", "Tag as key=value")
	_ = resourcesByTagCmd.MarkFlagRequired("tag")

	resourcesCmd.AddCommand(resourcesListCmd)
	resourcesCmd.AddCommand(resourcesByTagCmd)
	return resourcesCmd
}
