package models

// CurrencyIDR is the only currency the transcript pipeline produces.
const CurrencyIDR = "IDR"

// Expense categories
const (
	CategoryFoodDrink     = "Makanan & Minuman"
	CategoryTransport     = "Transportasi"
	CategoryShopping      = "Belanja"
	CategoryBills         = "Tagihan"
	CategoryHealth        = "Kesehatan"
	CategoryEntertainment = "Hiburan"
	CategoryEducation     = "Pendidikan"
	CategoryHousehold     = "Rumah Tangga"
	CategoryCommunication = "Komunikasi"
	CategoryOther         = "Lainnya"
)

// Income categories
const (
	CategorySalary      = "Gaji"
	CategoryBonus       = "Bonus"
	CategorySales       = "Penjualan"
	CategoryInvestment  = "Investasi"
	CategoryFreelance   = "Freelance"
	CategoryOtherIncome = "Pemasukan Lain"
)

// DefaultNote is substituted when cleanup strips a transcript down to nothing.
const DefaultNote = "Transaksi"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionLedgerFile = 0644
)
