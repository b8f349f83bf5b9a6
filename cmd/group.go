package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	groupName     string
	groupLocation string
	groupTags     map[string]string
	groupNoWait   bool
	groupYes      bool
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Resource group operations",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a resource group",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		location := resolveLocation(cmd, groupLocation)
		if !m.CreateResourceGroup(cmd.Context(), groupName, location, groupTags) {
			return fmt.Errorf("create resource group %q failed", groupName)
		}
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resource groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		m.ListResourceGroups(cmd.Context())
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a resource group and all its resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The confirmation gate sits in front of everything, including the
		// subscription fetch; without --yes no process is ever spawned.
		if !groupYes {
			return fmt.Errorf(
				"deleting %q removes ALL resources in the group; re-run with --yes to confirm",
				groupName,
			)
		}
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		if !m.DeleteResourceGroup(cmd.Context(), groupName, groupYes, groupNoWait) {
			return fmt.Errorf("delete resource group %q failed", groupName)
		}
		return nil
	},
}

func GetGroupCmd() *cobra.Command {
	groupCreateCmd.Flags().StringVar(&groupName, "name", "", "Resource group name")
	groupCreateCmd.Flags().
		StringVar(&groupLocation, "location", "eastus", "Azure region")
	groupCreateCmd.Flags().
		StringToStringVar(&groupTags, "tag", nil, "Tag as key=value (repeatable)")
	_ = groupCreateCmd.MarkFlagRequired("name")

	groupDeleteCmd.Flags().StringVar(&groupName, "name", "", "Resource group name")
	groupDeleteCmd.Flags().
		BoolVar(&groupNoWait, "no-wait", false, "Return before the deletion completes")
	groupDeleteCmd.Flags().
		BoolVar(&groupYes, "yes", false, "Confirm the deletion")
	_ = groupDeleteCmd.MarkFlagRequired("name")

	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupDeleteCmd)
	return groupCmd
}
