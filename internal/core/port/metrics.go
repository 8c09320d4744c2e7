package port

// Metrics counts business outcomes. Implemented by the prometheus adapter.
type Metrics interface {
	CheckoutProcessed(status string)
	ReconcileProcessed(result string)
	ReceiptPrinted(mode string)
	PrintFailed(mode string)
}
