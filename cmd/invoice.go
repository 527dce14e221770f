package cmd

import (
	"fmt"
	"strings"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Bill finished work orders and settle invoices",
	Long: `Invoices work on the work orders, payment means and invoices listed in the
roster. Work orders and payment means are named by their roster ref or by ID.`,
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Bill finished work orders",
	Long: `Bills the given work orders, or every finished one when none is given, and
prints the invoice totals.`,
	Args: cobra.NoArgs,
	RunE: runInvoiceCreate,
}

var invoiceSettleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Settle an invoice of the roster",
	Long: `Charges every --pay REF=AMOUNT to the invoice and marks it PAID. Nothing is
charged unless the payments cover the invoice.`,
	Args: cobra.NoArgs,
	RunE: runInvoiceSettle,
}

func init() {
	invoiceCreateCmd.Flags().Int64("number", 0, "invoice number (required)")
	invoiceCreateCmd.Flags().String("date", "", "invoice date, as YYYY-MM-DD (required)")
	invoiceCreateCmd.Flags().StringSlice("work-order", nil, "work order to bill (default: every finished one)")
	_ = invoiceCreateCmd.MarkFlagRequired("number")
	_ = invoiceCreateCmd.MarkFlagRequired("date")

	invoiceSettleCmd.Flags().Int64("number", 0, "invoice number (required)")
	invoiceSettleCmd.Flags().StringArray("pay", nil, "payment as MEAN=AMOUNT, repeatable (required)")
	_ = invoiceSettleCmd.MarkFlagRequired("number")
	_ = invoiceSettleCmd.MarkFlagRequired("pay")

	invoiceCmd.AddCommand(invoiceCreateCmd, invoiceSettleCmd)
	rootCmd.AddCommand(invoiceCmd)
}

func runInvoiceCreate(cmd *cobra.Command, _ []string) error {
	number, _ := cmd.Flags().GetInt64("number")
	refs, _ := cmd.Flags().GetStringSlice("work-order")
	date, err := dayFlag(cmd, "date")
	if err != nil {
		return err
	}

	root, cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var ids []kernel.UUID
	if len(refs) == 0 {
		if ids, err = root.FinishedWorkOrderIDs(cmd.Context()); err != nil {
			return err
		}
	}
	for _, ref := range refs {
		id, err := root.WorkOrderID(ref)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	create, err := commands.NewCreateInvoiceCommand(number, date, ids)
	if err != nil {
		return err
	}
	if err = root.CreateCreateInvoiceCommandHandler().Handle(cmd.Context(), create); err != nil {
		return err
	}

	invoice, err := root.Invoice(cmd.Context(), number)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "invoice %d: %d work orders, VAT %s, total %s\n",
		number, len(invoice.WorkOrders()), invoice.VAT().StringFixed(2), invoice.Amount().StringFixed(2))
	return nil
}

func runInvoiceSettle(cmd *cobra.Command, _ []string) error {
	number, _ := cmd.Flags().GetInt64("number")
	pays, _ := cmd.Flags().GetStringArray("pay")

	root, cleanup, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	payments := make([]commands.PaymentRequest, 0, len(pays))
	for _, pay := range pays {
		ref, value, ok := strings.Cut(pay, "=")
		if !ok {
			return fmt.Errorf("--pay %q: want MEAN=AMOUNT", pay)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("--pay %q: %w", pay, err)
		}
		id, err := root.PaymentMeanID(ref)
		if err != nil {
			return err
		}
		payments = append(payments, commands.PaymentRequest{MeanID: id, Amount: amount})
	}

	settle, err := commands.NewSettleInvoiceCommand(number, payments)
	if err != nil {
		return err
	}
	if err = root.CreateSettleInvoiceCommandHandler().Handle(cmd.Context(), settle); err != nil {
		return err
	}

	invoice, err := root.Invoice(cmd.Context(), number)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "invoice %d %s: charged %s in %d payments\n",
		number, invoice.Status(), invoice.ChargedAmount().StringFixed(2), len(invoice.Charges()))
	return nil
}
