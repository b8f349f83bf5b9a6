package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azman-project/azman/pkg/azure"
)

// runInteractive drives the numbered-menu mode used when azman is invoked
// without a subcommand.
func runInteractive(cmd *cobra.Command, args []string) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}

	printBanner(cmd, m)

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		fmt.Fprintln(out, "Main Menu")
		fmt.Fprintln(out, "  1. Resource group operations")
		fmt.Fprintln(out, "  2. Storage account operations")
		fmt.Fprintln(out, "  3. Virtual machine operations")
		fmt.Fprintln(out, "  4. List all resources")
		fmt.Fprintln(out, "  5. Show current subscription")
		fmt.Fprintln(out, "  6. Exit")

		choice, err := prompt(in, out, "Select an option (1-6): ")
		if err != nil {
			return nil // EOF ends the session
		}

		switch choice {
		case "1":
			if err := groupMenu(cmd, m, in, out); err != nil {
				return nil
			}
		case "2":
			if err := storageMenu(cmd, m, in, out); err != nil {
				return nil
			}
		case "3":
			if err := vmMenu(cmd, m, in, out); err != nil {
				return nil
			}
		case "4":
			m.ListAllResources(cmd.Context(), "")
		case "5":
			sub := m.Subscription()
			fmt.Fprintf(out, "Name: %s\nID: %s\nState: %s\nTenant ID: %s\nIs Default: %v\n",
				sub.Name, sub.ID, sub.State, sub.TenantID, sub.IsDefault)
		case "6":
			fmt.Fprintln(out, "Goodbye")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option, select 1-6")
		}
	}
}

func groupMenu(cmd *cobra.Command, m *azure.Manager, in *bufio.Reader, out io.Writer) error {
	for {
		fmt.Fprintln(out, "Resource Group Operations")
		fmt.Fprintln(out, "  1. Create resource group")
		fmt.Fprintln(out, "  2. List resource groups")
		fmt.Fprintln(out, "  3. Delete resource group")
		fmt.Fprintln(out, "  4. Back")

		choice, err := prompt(in, out, "Select an option (1-4): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err := prompt(in, out, "Resource group name: ")
			if err != nil {
				return err
			}
			location, err := prompt(in, out, fmt.Sprintf("Location [%s]: ", defaultLocation()))
			if err != nil {
				return err
			}
			if location == "" {
				location = defaultLocation()
			}
			m.CreateResourceGroup(cmd.Context(), name, location, nil)
		case "2":
			m.ListResourceGroups(cmd.Context())
		case "3":
			name, err := prompt(in, out, "Resource group to delete: ")
			if err != nil {
				return err
			}
			confirmed, err := confirm(in, out,
				fmt.Sprintf("Delete %q and ALL its resources? (yes/no): ", name))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(out, "Deletion cancelled")
				continue
			}
			m.DeleteResourceGroup(cmd.Context(), name, true, true)
		case "4":
			return nil
		default:
			fmt.Fprintln(out, "Invalid option")
		}
	}
}

func storageMenu(cmd *cobra.Command, m *azure.Manager, in *bufio.Reader, out io.Writer) error {
	for {
		fmt.Fprintln(out, "Storage Account Operations")
		fmt.Fprintln(out, "  1. Create storage account")
		fmt.Fprintln(out, "  2. List storage accounts")
		fmt.Fprintln(out, "  3. Create blob container")
		fmt.Fprintln(out, "  4. Back")

		choice, err := prompt(in, out, "Select an option (1-4): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err := prompt(in, out, "Storage account name (3-24 lowercase alphanumeric): ")
			if err != nil {
				return err
			}
			rg, err := prompt(in, out, "Resource group name: ")
			if err != nil {
				return err
			}
			location, err := prompt(in, out, fmt.Sprintf("Location [%s]: ", defaultLocation()))
			if err != nil {
				return err
			}
			if location == "" {
				location = defaultLocation()
			}
			m.CreateStorageAccount(cmd.Context(), name, rg, location, "")
		case "2":
			m.ListStorageAccounts(cmd.Context(), "")
		case "3":
			account, err := prompt(in, out, "Storage account name: ")
			if err != nil {
				return err
			}
			container, err := prompt(in, out, "Container name: ")
			if err != nil {
				return err
			}
			m.CreateBlobContainer(cmd.Context(), account, container)
		case "4":
			return nil
		default:
			fmt.Fprintln(out, "Invalid option")
		}
	}
}

func vmMenu(cmd *cobra.Command, m *azure.Manager, in *bufio.Reader, out io.Writer) error {
	for {
		fmt.Fprintln(out, "Virtual Machine Operations")
		fmt.Fprintln(out, "  1. Create VM")
		fmt.Fprintln(out, "  2. List VMs")
		fmt.Fprintln(out, "  3. Start VM")
		fmt.Fprintln(out, "  4. Stop VM")
		fmt.Fprintln(out, "  5. Back")

		choice, err := prompt(in, out, "Select an option (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err := prompt(in, out, "VM name: ")
			if err != nil {
				return err
			}
			rg, err := prompt(in, out, "Resource group name: ")
			if err != nil {
				return err
			}
			confirmed, err := confirm(in, out, "Creating a VM will incur costs. Continue? (yes/no): ")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(out, "VM creation cancelled")
				continue
			}
			m.CreateVM(cmd.Context(), name, rg, "", "", "")
		case "2":
			m.ListVMs(cmd.Context(), "")
		case "3":
			name, err := prompt(in, out, "VM name: ")
			if err != nil {
				return err
			}
			rg, err := prompt(in, out, "Resource group name: ")
			if err != nil {
				return err
			}
			m.StartVM(cmd.Context(), name, rg)
		case "4":
			name, err := prompt(in, out, "VM name: ")
			if err != nil {
				return err
			}
			rg, err := prompt(in, out, "Resource group name: ")
			if err != nil {
				return err
			}
			m.StopVM(cmd.Context(), name, rg)
		case "5":
			return nil
		default:
			fmt.Fprintln(out, "Invalid option")
		}
	}
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func confirm(in *bufio.Reader, out io.Writer, label string) (bool, error) {
	answer, err := prompt(in, out, label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}
