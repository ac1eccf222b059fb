// ABOUTME: Static meal type catalog for recipe generation
// ABOUTME: Fixed at build time, never mutated at runtime

package recipe

// MealType is one category tag in the fixed meal type catalog.
type MealType struct {
	ID          string
	Title       string
	Description string
}

// MealTypes is the full catalog, in presentation order.
var MealTypes = []MealType{
	{ID: "breakfast", Title: "Kahvaltı", Description: "Güne başlangıç için hafif ve besleyici"},
	{ID: "main", Title: "Ana Yemek", Description: "Klasik ana yemek kategorisi"},
	{ID: "soup", Title: "Çorba", Description: "Sıcak veya soğuk çorbalar"},
	{ID: "meze", Title: "Meze", Description: "Paylaşımlık küçük tabaklar"},
	{ID: "dessert", Title: "Tatlı", Description: "Şekerli tatlılar"},
	{ID: "salad", Title: "Salata", Description: "Taze ve sağlıklı"},
	{ID: "pastry", Title: "Hamur İşi", Description: "Börek, poğaça, pide"},
	{ID: "olive", Title: "Zeytinyağlı", Description: "Soğuk servis edilen zeytinyağlılar"},
	{ID: "quick", Title: "Hızlı Çözüm", Description: "30 dakikanın altında hazır"},
}

// MealTypeByID looks up a catalog entry by its id.
func MealTypeByID(id string) (MealType, bool) {
	for _, m := range MealTypes {
		if m.ID == id {
			return m, true
		}
	}
	return MealType{}, false
}

// MealTypeIDForTitle maps a recipe's stored meal type title back to a catalog
// id. Recipes store the display title, so regenerating an alternative needs
// this reverse lookup; unknown titles fall back to the first catalog entry.
func MealTypeIDForTitle(title string) string {
	for _, m := range MealTypes {
		if m.Title == title {
			return m.ID
		}
	}
	return MealTypes[0].ID
}
