package accounts

// DefaultAccount is one row of the standard transport-business chart.
type DefaultAccount struct {
	Number        string
	Name          string
	Type          AccountType
	NormalBalance NormalBalance
}

// DefaultChart is the catalog seeded by InitializeDefaults. Opening
// balances start at zero; the class id is supplied per seeding run.
var DefaultChart = []DefaultAccount{
	{"1100", "Cash in Hand", AccountTypeAsset, NormalDebit},
	{"1110", "Bank Accounts", AccountTypeAsset, NormalDebit},
	{"1200", "Vehicles", AccountTypeAsset, NormalDebit},
	{"1250", "Accumulated Depreciation", AccountTypeAsset, NormalCredit},
	{"1300", "Fuel Inventory", AccountTypeAsset, NormalDebit},
	{"2100", "Accounts Payable", AccountTypeLiability, NormalCredit},
	{"2200", "Loans Payable", AccountTypeLiability, NormalCredit},
	{"3100", "Owner Equity", AccountTypeEquity, NormalCredit},
	{"4100", "Passenger Revenue", AccountTypeRevenue, NormalCredit},
	{"4200", "Cargo Revenue", AccountTypeRevenue, NormalCredit},
	{"4300", "Charter Revenue", AccountTypeRevenue, NormalCredit},
	{"5100", "Fuel & Oil Expenses", AccountTypeExpense, NormalDebit},
	{"5200", "Maintenance Expenses", AccountTypeExpense, NormalDebit},
	{"5300", "Salaries & Wages", AccountTypeExpense, NormalDebit},
	{"5400", "Insurance Expenses", AccountTypeExpense, NormalDebit},
	{"5500", "Administrative Expenses", AccountTypeExpense, NormalDebit},
}
