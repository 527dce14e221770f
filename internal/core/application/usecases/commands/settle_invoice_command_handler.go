package commands

import (
	"context"
	"fmt"

	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"
)

// SettleInvoiceCommandHandler settles an invoice through the Cashier, so the
// invoice either ends PAID with every charge made or is left as it was.
type SettleInvoiceCommandHandler struct {
	invoices     ports.InvoiceRepository
	paymentMeans ports.PaymentMeanRepository
	cashier      services.Cashier
}

func NewSettleInvoiceCommandHandler(
	invoices ports.InvoiceRepository,
	paymentMeans ports.PaymentMeanRepository,
) SettleInvoiceCommandHandler {
	return SettleInvoiceCommandHandler{
		invoices:     invoices,
		paymentMeans: paymentMeans,
		cashier:      services.NewCashier(),
	}
}

func (h SettleInvoiceCommandHandler) Handle(ctx context.Context, cmd SettleInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	invoice, err := h.invoices.Get(ctx, cmd.Number())
	if err != nil {
		return fmt.Errorf("load invoice %d: %w", cmd.Number(), err)
	}

	payments := make([]services.Payment, 0, len(cmd.Payments()))
	for _, p := range cmd.Payments() {
		mean, err := h.paymentMeans.Get(ctx, p.MeanID)
		if err != nil {
			return fmt.Errorf("load payment mean %s: %w", p.MeanID, err)
		}
		payments = append(payments, services.Payment{Mean: mean, Amount: p.Amount})
	}

	if _, err = h.cashier.Settle(invoice, payments); err != nil {
		return err
	}

	return nil
}
