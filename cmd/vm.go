package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azman-project/azman/pkg/display"
)

var (
	vmName      string
	vmGroup     string
	vmImage     string
	vmSize      string
	vmAdminUser string
	vmYes       bool
)

var vmCmd = &cobra.Command{
	Use:   "vm",
	Short: "Virtual machine operations",
}

var vmCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a virtual machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !vmYes {
			return fmt.Errorf(
				"creating VM %q will incur costs; re-run with --yes to confirm",
				vmName,
			)
		}
		m, err := newManager(cmd)
		if err != nil {
			return err
		}

		s := display.NewSpinner("Creating virtual machine (this may take several minutes)")
		ok := m.CreateVM(cmd.Context(), vmName, vmGroup, vmImage, vmSize, vmAdminUser)
		s.Stop()

		if !ok {
			return fmt.Errorf("create virtual machine %q failed", vmName)
		}
		return nil
	},
}

var vmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List virtual machines",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		m.ListVMs(cmd.Context(), vmGroup)
		return nil
	},
}

var vmStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a virtual machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		if !m.StartVM(cmd.Context(), vmName, vmGroup) {
			return fmt.Errorf("start virtual machine %q failed", vmName)
		}
		return nil
	},
}

var vmStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop (deallocate) a virtual machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager(cmd)
		if err != nil {
			return err
		}
		if !m.StopVM(cmd.Context(), vmName, vmGroup) {
			return fmt.Errorf("stop virtual machine %q failed", vmName)
		}
		return nil
	},
}

func GetVMCmd() *cobra.Command {
	vmCreateCmd.Flags().StringVar(&vmName, "name", "", "VM name")
	vmCreateCmd.Flags().StringVar(&vmGroup, "resource-group", "", "Resource group name")
	vmCreateCmd.Flags().StringVar(&vmImage, "image", "UbuntuLTS", "OS image")
	vmCreateCmd.Flags().StringVar(&vmSize, "size", "Standard_B1s", "VM size")
	vmCreateCmd.Flags().
		StringVar(&vmAdminUser, "admin-username", "azureuser", "Administrator username")
	vmCreateCmd.Flags().BoolVar(&vmYes, "yes", false, "Confirm VM creation")
	_ = vmCreateCmd.MarkFlagRequired("name")
	_ = vmCreateCmd.MarkFlagRequired("resource-group")

	vmListCmd.Flags().StringVar(&vmGroup, "resource-group", "", "Filter by resource group")

	vmStartCmd.Flags().StringVar(&vmName, "name", "", "VM name")
	vmStartCmd.Flags().StringVar(&vmGroup, "resource-group", "", "Resource group name")
	_ = vmStartCmd.MarkFlagRequired("name")
	_ = vmStartCmd.MarkFlagRequired("resource-group")

	vmStopCmd.Flags().StringVar(&vmName, "name", "", "VM name")
	vmStopCmd.Flags().StringVar(&vmGroup, "resource-group", "", "Resource group name")
	_ = vmStopCmd.MarkFlagRequired("name")
	_ = vmStopCmd.MarkFlagRequired("resource-group")

	vmCmd.AddCommand(vmCreateCmd)
	vmCmd.AddCommand(vmListCmd)
	vmCmd.AddCommand(vmStartCmd)
	vmCmd.AddCommand(vmStopCmd)
	return vmCmd
}
