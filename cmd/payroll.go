package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

const monthLayout = "2006-01"

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Generate and list payrolls",
}

var payrollGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the payrolls of a month",
	Long: `Generates the payroll of every mechanic with a contract in force on the
last day of the month. Payrolls already stored for that month are skipped.`,
	Args: cobra.NoArgs,
	RunE: runPayrollGenerate,
}

var payrollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored payrolls of a mechanic",
	Args:  cobra.NoArgs,
	RunE:  runPayrollList,
}

func init() {
	payrollGenerateCmd.Flags().String("period", "", "month to generate, as YYYY-MM (required)")
	_ = payrollGenerateCmd.MarkFlagRequired("period")

	payrollListCmd.Flags().String("nif", "", "NIF of the mechanic (required)")
	payrollListCmd.Flags().String("from", "", "first month, as YYYY-MM (required)")
	payrollListCmd.Flags().String("to", "", "last month, as YYYY-MM (default: from)")
	_ = payrollListCmd.MarkFlagRequired("nif")
	_ = payrollListCmd.MarkFlagRequired("from")

	payrollCmd.AddCommand(payrollGenerateCmd, payrollListCmd)
	rootCmd.AddCommand(payrollCmd)
}

func runPayrollGenerate(cmd *cobra.Command, _ []string) error {
	period, err := monthFlag(cmd, "period")
	if err != nil {
		return err
	}
	generate, err := commands.NewGeneratePayrollsCommand(period)
	if err != nil {
		return err
	}

	root, cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := root.CreateGeneratePayrollsCommandHandler().Handle(cmd.Context(), generate)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d payrolls for %s\n", count, period.Format(monthLayout))
	return nil
}

func runPayrollList(cmd *cobra.Command, _ []string) error {
	nif, _ := cmd.Flags().GetString("nif")
	from, err := monthFlag(cmd, "from")
	if err != nil {
		return err
	}
	to := from
	if cmd.Flags().Changed("to") {
		if to, err = monthFlag(cmd, "to"); err != nil {
			return err
		}
	}
	query, err := queries.NewGetPayrollsQuery(nif, from, to)
	if err != nil {
		return err
	}

	root, cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	payrolls, err := root.CreateGetPayrollsQueryHandler().Handle(cmd.Context(), query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "PAID ON\tMONTHLY\tEXTRA\tPRODUCTIVITY\tTRIENNIUMS\tGROSS\tINCOME TAX\tSOCIAL SEC.\tNET\t")
	for _, p := range payrolls {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.PaidOn.Format(time.DateOnly),
			p.MonthlyWage.StringFixed(2),
			p.ExtraWage.StringFixed(2),
			p.ProductivityEarning.StringFixed(2),
			p.TrienniumEarning.StringFixed(2),
			p.Gross().StringFixed(2),
			p.IncomeTax.StringFixed(2),
			p.SocialSecurity.StringFixed(2),
			p.Net().StringFixed(2),
		)
	}
	return w.Flush()
}

func monthFlag(cmd *cobra.Command, name string) (time.Time, error) {
	value, _ := cmd.Flags().GetString(name)
	month, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s %q: want YYYY-MM", name, value)
	}
	return month, nil
}
