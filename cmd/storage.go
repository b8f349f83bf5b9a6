package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	storageName      string
	storageGroup     string
	storageLocation  string
	storageSKU       string
	storageAccount   string
	storageContainer string
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Storage account operations",
}

var storageCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a storage account",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		location := resolveLocation(cmd, storageLocation)
		if !m.CreateStorageAccount(cmd.Context(), storageName, storageGroup, location, storageSKU) {
			return fmt.Errorf("create storage account %q failed", storageName)
		}
		return nil
	},
}

var storageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List storage accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		m.ListStorageAccounts(cmd.Context(), storageGroup)
		return nil
	},
}

var storageContainerCreateCmd = &cobra.Command{
	Use:   "container-create",
	Short: "Create a blob container in a storage account",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		if !m.CreateBlobContainer(cmd.Context(), storageAccount, storageContainer) {
			return fmt.Errorf("create blob container %q failed", storageContainer)
		}
		return nil
	},
}

func GetStorageCmd() *cobra.Command {
	storageCreateCmd.Flags().
		StringVar(&storageName, "name", "", "Storage account name (3-24 lowercase alphanumeric)")
	storageCreateCmd.Flags().
		StringVar(&storageGroup, "resource-group", "", "Resource group name")
	storageCreateCmd.Flags().
		StringVar(&storageLocation, "location", "eastus", "Azure region")
	storageCreateCmd.Flags().
		StringVar(&storageSKU, "sku", "Standard_LRS", "Storage SKU")
	_ = storageCreateCmd.MarkFlagRequired("name")
	_ = storageCreateCmd.MarkFlagRequired("resource-group")

	storageListCmd.Flags().
		StringVar(&storageGroup, "resource-group", "", "Filter by resource group")

	storageContainerCreateCmd.Flags().
		StringVar(&storageAccount, "account", "", "Storage account name")
	storageContainerCreateCmd.Flags().
		StringVar(&storageContainer, "name", "", "Container name")
	_ = storageContainerCreateCmd.MarkFlagRequired("account")
	_ = storageContainerCreateCmd.MarkFlagRequired("name")

	storageCmd.AddCommand(storageCreateCmd)
	storageCmd.AddCommand(storageListCmd)
	storageCmd.AddCommand(storageContainerCreateCmd)
	return storageCmd
}
