package fec

import "github.com/shopspring/decimal"

// Account is a fixed entry of the chart of accounts (Plan Comptable Général).
type Account struct {
	Code  string
	Label string
}

// The chart is closed: postings always resolve to one of these accounts,
// never to a dynamically built code.
var (
	// Class 4 — third parties.
	accCustomers      = Account{Code: "411000", Label: "Clients"}
	accSuppliers      = Account{Code: "401000", Label: "Fournisseurs"}
	accStaff          = Account{Code: "421000", Label: "Personnel - rémunérations dues"}
	accSocialSecurity = Account{Code: "431000", Label: "Sécurité sociale"}

	// Class 5 — financial.
	accCash         = Account{Code: "530000", Label: "Caisse"}
	accBank         = Account{Code: "512000", Label: "Banque"}
	accCardClearing = Account{Code: "511200", Label: "Cartes bancaires à encaisser"}

	// Class 6 — expenses.
	accFoodPurchases  = Account{Code: "601000", Label: "Achats denrées alimentaires"}
	accDrinkPurchases = Account{Code: "601100", Label: "Achats boissons"}
	accPayroll        = Account{Code: "641000", Label: "Rémunérations du personnel"}
	accSocialCharges  = Account{Code: "645000", Label: "Charges de sécurité sociale"}

	// Class 7 — revenue.
	accFoodSales     = Account{Code: "707100", Label: "Ventes nourriture sur place"}
	accDrinkSales    = Account{Code: "707200", Label: "Ventes boissons"}
	accTakeawaySales = Account{Code: "707300", Label: "Ventes à emporter"}

	// VAT sub-accounts.
	accVAT10         = Account{Code: "445710", Label: "TVA collectée 10%"}
	accVAT20         = Account{Code: "445720", Label: "TVA collectée 20%"}
	accVAT55         = Account{Code: "445730", Label: "TVA collectée 5,5%"}
	accVATDeductible = Account{Code: "445660", Label: "TVA déductible"}
)

var (
	rate10 = decimal.NewFromInt(10)
	rate20 = decimal.NewFromInt(20)
)

// revenueAccount routes a sale to its revenue account by category.
// Anything that is not drinks or takeaway (including an absent
// category) falls back to on-site food sales.
func revenueAccount(c Category) Account {
	switch c {
	case CategoryDrinks:
		return accDrinkSales
	case CategoryTakeaway:
		return accTakeawaySales
	default:
		return accFoodSales
	}
}

// settlementAccount routes a sale to the account that receives the
// gross amount. Card payments sit in the clearing account until the
// acquirer settles them to the bank.
func settlementAccount(m PaymentMethod) Account {
	switch m {
	case PaymentCash:
		return accCash
	case PaymentCard:
		return accCardClearing
	default:
		return accBank
	}
}

// vatAccount selects the collected-VAT account for a rate. Rates other
// than 10 and 20 fall back to the 5.5% account; the export is never
// blocked on an unrecognized rate.
func vatAccount(rate decimal.Decimal) Account {
	switch {
	case rate.Equal(rate10):
		return accVAT10
	case rate.Equal(rate20):
		return accVAT20
	default:
		return accVAT55
	}
}
