package lexicon

import "fjacquet/ucap-csv/internal/models"

// DefaultExpense is the built-in expense lexicon. Order is significant: the
// classifier returns the first category with a whole-word hit, so a transcript
// like "beli kopi" resolves to Makanan & Minuman even though "beli" also
// triggers Belanja further down.
var DefaultExpense = []models.CategoryConfig{
	{
		Name: models.CategoryFoodDrink,
		Keywords: []string{
			"makan", "nasi", "ayam", "bebek", "soto", "bakso", "mie", "kopi",
			"teh", "jus", "minuman", "restoran", "warung", "cafe", "geprek",
			"padang", "burger", "pizza", "snack", "jajan", "kue", "roti",
			"sarapan", "lunch", "dinner", "malam", "siang", "pagi",
		},
	},
	{
		Name: models.CategoryTransport,
		Keywords: []string{
			"bensin", "ojek", "grab", "gojek", "taxi", "bus", "kereta", "krl",
			"mrt", "parkir", "tol", "motor", "mobil", "servis", "bengkel",
			"ban", "oli", "driver", "uber", "maxim", "indrive", "angkot",
		},
	},
	{
		Name: models.CategoryShopping,
		Keywords: []string{
			"beli", "belanja", "shopping", "mall", "toko", "pasar",
			"supermarket", "indomaret", "alfamart", "toped", "tokopedia",
			"shopee", "lazada", "bukalapak", "baju", "celana", "sepatu",
			"tas", "aksesoris", "skincare", "makeup",
		},
	},
	{
		Name: models.CategoryBills,
		Keywords: []string{
			"listrik", "air", "pdam", "telepon", "internet", "wifi", "pulsa",
			"token", "pln", "tagihan", "bpjs", "asuransi", "cicilan",
			"kredit", "hutang", "pinjaman", "sewa", "kos", "kontrakan",
		},
	},
	{
		Name: models.CategoryHealth,
		Keywords: []string{
			"dokter", "rumah sakit", "obat", "vitamin", "kesehatan",
			"medical", "apotek", "klinik", "periksa", "gigi", "mata",
			"checkup", "imunisasi", "vaksin",
		},
	},
	{
		Name: models.CategoryEntertainment,
		Keywords: []string{
			"bioskop", "game", "streaming", "netflix", "spotify", "youtube",
			"hiburan", "nonton", "wisata", "jalan", "liburan", "hotel",
			"staycation", "konser", "tiket", "musik", "hobi",
		},
	},
	{
		Name: models.CategoryEducation,
		Keywords: []string{
			"sekolah", "kuliah", "kursus", "les", "buku", "pendidikan",
			"training", "seminar", "webinar", "workshop", "spp",
			"uang gedung", "seragam", "alat tulis",
		},
	},
	{
		Name: models.CategoryHousehold,
		Keywords: []string{
			"sabun", "sampo", "tissue", "deterjen", "pembersih",
			"rumah tangga", "galon", "gas", "elpiji", "baterai", "lampu",
			"perabot", "renovasi", "tukang",
		},
	},
	{
		Name: models.CategoryCommunication,
		Keywords: []string{
			"paket", "kuota", "data", "sim card", "kartu perdana",
		},
	},
}

// DefaultIncome is the built-in income lexicon, same ordering contract as
// DefaultExpense.
var DefaultIncome = []models.CategoryConfig{
	{
		Name:     models.CategorySalary,
		Keywords: []string{"gaji", "salary", "payday", "bayaran", "upah"},
	},
	{
		Name:     models.CategoryBonus,
		Keywords: []string{"bonus", "thr", "hadiah", "reward", "insentif"},
	},
	{
		Name:     models.CategorySales,
		Keywords: []string{"jual", "sold", "laku", "dagang", "transaksi", "toko"},
	},
	{
		Name: models.CategoryInvestment,
		Keywords: []string{
			"investasi", "saham", "reksadana", "crypto", "dividen",
			"profit", "bunga", "deposito",
		},
	},
	{
		Name: models.CategoryFreelance,
		Keywords: []string{
			"freelance", "proyek", "project", "side job", "ceperan",
			"nulis", "desain", "coding",
		},
	},
}

// DefaultSlang maps colloquial amount words to rupiah. Checked before any
// numeric pattern, in this order. "sejuta" sits next to "sejut" because the
// tokens are matched as whole words and speech transcripts produce both forms.
var DefaultSlang = []models.SlangEntry{
	{Term: "goceng", Value: 5000},
	{Term: "ceban", Value: 10000},
	{Term: "noban", Value: 20000},
	{Term: "goban", Value: 50000},
	{Term: "gocap", Value: 50000},
	{Term: "gopek", Value: 500},
	{Term: "seceng", Value: 1000},
	{Term: "cepek", Value: 100},
	{Term: "sejuta", Value: 1000000},
	{Term: "sejut", Value: 1000000},
	{Term: "jigo", Value: 25000},
}

// DefaultLexicons bundles both direction lexicons.
func DefaultLexicons() models.LexiconConfig {
	return models.LexiconConfig{
		Expense: DefaultExpense,
		Income:  DefaultIncome,
	}
}
