package parser

import (
	"testing"

	"fjacquet/ucap-csv/internal/lexicon"
	"fjacquet/ucap-csv/internal/logging"
	"fjacquet/ucap-csv/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Expense(t *testing.T) {
	p := newTestParser()

	testCases := []struct {
		transcript string
		want       string
	}{
		{"makan ayam geprek", models.CategoryFoodDrink},
		{"isi bensin full tank", models.CategoryTransport},
		{"belanja di indomaret", models.CategoryShopping},
		{"bayar listrik bulan ini", models.CategoryBills},
		{"tebus obat di apotek", models.CategoryHealth},
		{"nonton bioskop", models.CategoryEntertainment},
		{"bayar spp sekolah", models.CategoryEducation},
		{"galon sama gas habis", models.CategoryHousehold},
		{"isi kuota", models.CategoryCommunication},
		{"martabak manis", models.CategoryOther},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, p.Classify(tc.transcript, models.Expense), "transcript %q", tc.transcript)
	}
}

func TestClassify_Income(t *testing.T) {
	p := newTestParser()

	testCases := []struct {
		transcript string
		want       string
	}{
		{"dapat gaji bulanan", models.CategorySalary},
		{"terima thr lebaran", models.CategoryBonus},
		{"jual sepeda bekas", models.CategorySales},
		{"dividen saham masuk", models.CategoryInvestment},
		{"bayaran proyek desain", models.CategorySalary},
		{"dapat uang kaget", models.CategoryOtherIncome},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, p.Classify(tc.transcript, models.Income), "transcript %q", tc.transcript)
	}
}

func TestClassify_FirstCategoryWins(t *testing.T) {
	p := newTestParser()

	// "beli" triggers Belanja, "kopi" triggers Makanan & Minuman. Food is
	// earlier in the lexicon, so it wins regardless of word order.
	assert.Equal(t, models.CategoryFoodDrink, p.Classify("beli kopi", models.Expense))
	assert.Equal(t, models.CategoryFoodDrink, p.Classify("kopi beli", models.Expense))

	// "parkir" (Transportasi) appears before "mall" in the phrase, but
	// Transportasi is also earlier in the lexicon than Belanja.
	assert.Equal(t, models.CategoryTransport, p.Classify("parkir di mall", models.Expense))
}

func TestClassify_WholeWordsOnly(t *testing.T) {
	p := newTestParser()

	// "tol" must not fire inside "tolong".
	assert.Equal(t, models.CategoryOther, p.Classify("tolong dicatat", models.Expense))
	assert.Equal(t, models.CategoryTransport, p.Classify("bayar tol dalam kota", models.Expense))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	p := newTestParser()

	assert.Equal(t, models.CategoryFoodDrink, p.Classify("MAKAN SIANG", models.Expense))
}

func TestClassify_DirectionScopesLexicon(t *testing.T) {
	p := newTestParser()

	// "gaji" is an income keyword only; as an expense phrase it falls through.
	assert.Equal(t, models.CategoryOther, p.Classify("gajian belum turun", models.Expense))
	// "listrik" is an expense keyword only.
	assert.Equal(t, models.CategoryOtherIncome, p.Classify("listrik", models.Income))
}

func TestClassify_CustomLexiconOrder(t *testing.T) {
	// Override order decides ties, proving precedence comes from the lexicon
	// and not from any built-in ranking.
	store := &lexicon.MockStore{
		Lexicons: models.LexiconConfig{
			Expense: []models.CategoryConfig{
				{Name: "Ngopi", Keywords: []string{"kopi"}},
				{Name: "Makan", Keywords: []string{"makan", "kopi"}},
			},
			Income: lexicon.DefaultIncome,
		},
		Slang: lexicon.DefaultSlang,
	}
	p := New(store, &logging.MockLogger{})

	assert.Equal(t, "Ngopi", p.Classify("makan sambil kopi", models.Expense))
}
