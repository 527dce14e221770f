package cmd

import (
	"fmt"
	"time"

	"workshop/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Manage the contracts of the roster",
}

var contractTerminateCmd = &cobra.Command{
	Use:   "terminate",
	Short: "Terminate the contract in force of a mechanic",
	Long: `Terminates the contract in force of a mechanic at the end of the month of
--date and prints the settlement owed. The roster is not rewritten: list the
termination under the contract to keep it.`,
	Args: cobra.NoArgs,
	RunE: runContractTerminate,
}

func init() {
	contractTerminateCmd.Flags().String("nif", "", "NIF of the mechanic (required)")
	contractTerminateCmd.Flags().String("date", "", "termination date, as YYYY-MM-DD (required)")
	_ = contractTerminateCmd.MarkFlagRequired("nif")
	_ = contractTerminateCmd.MarkFlagRequired("date")

	contractCmd.AddCommand(contractTerminateCmd)
	rootCmd.AddCommand(contractCmd)
}

func runContractTerminate(cmd *cobra.Command, _ []string) error {
	nif, _ := cmd.Flags().GetString("nif")
	date, err := dayFlag(cmd, "date")
	if err != nil {
		return err
	}
	terminate, err := commands.NewTerminateContractCommand(nif, date)
	if err != nil {
		return err
	}

	root, cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	contract, err := root.CreateTerminateContractCommandHandler().Handle(cmd.Context(), terminate)
	if err != nil {
		return err
	}

	end, _ := contract.EndDate()
	fmt.Fprintf(cmd.OutOrStdout(), "terminated contract of %s on %s, settlement %s\n",
		nif, end.Format(time.DateOnly), contract.Settlement().StringFixed(2))
	return nil
}

func dayFlag(cmd *cobra.Command, name string) (time.Time, error) {
	value, _ := cmd.Flags().GetString(name)
	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s %q: want YYYY-MM-DD", name, value)
	}
	return day, nil
}
