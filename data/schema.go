package data

// FraudFeatures is the ordered feature list the fraud classifier was
// trained on. Incoming tables are reconciled to this width positionally;
// the names are used for manually entered rows and the document export.
var FraudFeatures = []string{
	"step",
	"amount",
	"oldbalanceOrg",
	"newbalanceOrig",
	"oldbalanceDest",
	"newbalanceDest",
	"balanceDiffOrig",
	"balanceDiffDest",
	"amountRatio",
	"isTransfer",
	"isCashOut",
	"isPayment",
	"isCashIn",
	"isDebit",
	"MerchantDest",
	"largeAmount",
}

// SegmentFeatures is the ordered feature list of the customer
// segmentation model.
var SegmentFeatures = []string{
	"balance",
	"balanceFrequency",
	"purchases",
	"oneoffPurchases",
	"installmentsPurchases",
	"cashAdvance",
	"purchasesFrequency",
	"oneoffPurchasesFrequency",
	"purchasesInstallmentsFrequency",
	"cashAdvanceFrequency",
	"cashAdvanceTrx",
	"purchasesTrx",
	"creditLimit",
	"payments",
	"minimumPayments",
	"prcFullPayment",
}
