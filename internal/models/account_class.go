package models

import "strings"

// COGS sayılan gider kategorileri: yem, ilaç, hayvan alımı, ambalaj.
// Diğer tüm gider kategorileri işletme gideri (opex) sayılır.
var cogsCategories = []string{
	"Yem",
	"İlaç",
	"Civciv/Hayvan Alımı",
	"Ambalaj",
}

// ResolveAccountClass: Kategori string'inden muhasebe sınıfını çözer.
// Kayıt OLUŞTURULURKEN bir kez çağrılır; raporlama her seferinde string
// eşleştirmek yerine kayıttaki Class alanına güvenir.
func ResolveAccountClass(txType TransactionType, category string) AccountClass {
	if txType == TransactionTypeIncome {
		return AccountClassRevenue
	}

	normalized := strings.TrimSpace(category)
	for _, c := range cogsCategories {
		if strings.EqualFold(normalized, c) {
			return AccountClassCOGS
		}
	}
	return AccountClassOpex
}
