package samples

import (
	"context"

	"github.com/busted-ai/busted-predictor-frontend/data"
)

// Lister serves the built-in example transactions shown on the analyze
// page. The examples are fixed demo data; they are re-scored on each
// request but never stored.
type Lister struct{}

func (l *Lister) GetExamples(_ context.Context) (data.ExampleTransactions, error) {
	examples := make(data.ExampleTransactions, len(builtin))
	copy(examples, builtin)
	return examples, nil
}

// Values follow data.FraudFeatures order: step, amount, oldbalanceOrg,
// newbalanceOrig, oldbalanceDest, newbalanceDest, balanceDiffOrig,
// balanceDiffDest, amountRatio, isTransfer, isCashOut, isPayment,
// isCashIn, isDebit, MerchantDest, largeAmount.
var builtin = data.ExampleTransactions{
	{
		Title:  "Transfer draining most of the origin balance",
		Values: []float64{12, 4800, 5200, 400, 0, 4800, 4800, -4800, 0.92, 1, 0, 0, 0, 0, 0, 0},
	},
	{
		Title:  "Large cash-out to a non-merchant account",
		Values: []float64{87, 9100, 20000, 10900, 350, 9450, 9100, -9100, 0.45, 0, 1, 0, 0, 0, 0, 1},
	},
	{
		Title:  "Routine card payment to a merchant",
		Values: []float64{3, 64.5, 1200, 1135.5, 0, 64.5, 64.5, -64.5, 0.05, 0, 0, 1, 0, 0, 1, 0},
	},
	{
		Title:  "Small debit with healthy remaining balance",
		Values: []float64{41, 220, 8800, 8580, 120, 340, 220, -220, 0.02, 0, 0, 0, 0, 1, 0, 0},
	},
}
