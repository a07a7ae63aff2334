package services

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/report"
)

// ReceiptSvc renders receipts for recorded payments.
type ReceiptSvc interface {
	// BuildCashReceipt renders the receipt of a cash payment in the format
	// selected by opts.
	BuildCashReceipt(ctx context.Context, paymentUUID string, opts report.Options) (*report.Result, error)
}
