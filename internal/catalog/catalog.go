package catalog

import "strings"

// Size labels used everywhere (records, API, prompt). The empty string
// means "no size" for products sold in a single format.
const (
	SizePetit = "Petit"
	SizeMoyen = "Moyen"
	SizeGrand = "Grand"
)

type Category struct {
	Label    string   `json:"label"`
	Products []string `json:"products"`
}

type Product struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Menu data. Kept separate from any logic so adding a burger or moving a
// product between categories is a one-line change.
var categories = []Category{
	{
		Label:    "🥩 Viandes",
		Products: []string{"10:1", "4:1", "3:1"},
	},
	{
		Label:    "🍗 Protéines",
		Products: []string{"Poulet wrap", "Poulet CBO", "Poulet McChicken", "Poulet BM", "Filet", "Nuggets Veggie", "Nuggets", "Palet Veggie", "Apple Pie"},
	},
	{
		Label:    "🥪 Sandwichs",
		Products: []string{"CBO Smoky Ranch", "McCrispy Smoky Ranch Bacon", "McWrap Smoky Ranch", "Big Mac Bacon", "Big Mac", "McVeggie", "McWrap Veggie", "Filet-O-Fish", "McFish Mayo", "McFish", "Fish New York", "Double Fish New York", "P'tit Chicken", "Croque McDo", "McChicken", "Cheeseburger", "Egg & Cheese McMuffin", "CBO", "Hamburger", "McWrap New York", "Royal Cheese", "P'tit Wrap Ranch", "Egg & Cheese", "Egg & Bacon", "Double Cheeseburger", "Royal Deluxe", "Royal Bacon", "Big Tasty 1 steak", "Big Tasty 2 steaks", "280 Original", "Double Cheese Bacon", "Big Arch", "McCrispy Bacon", "McCrispy", "Bacon & Beef McMuffin"},
	},
	{
		Label:    "🍟 Accompagnements",
		Products: []string{"Frites", "Potatoes", "Wavy Fries", "Frites Cheddar", "Frites Bacon", "Potatoes Cheddar", "Potatoes Bacon"},
	},
	{
		Label:    "🥤 Boissons",
		Products: []string{"Coca-Cola", "Coca-Cola Sans-Sucres", "Coca-Cola Cherry Zéro", "Fanta Sans-Sucres", "Lipton Ice Tea", "Sprite Sans-Sucres", "Oasis Tropical", "Green Apple Sprite", "Eau Plate", "Eau Pétillante", "Minute Maid Orange", "P'tit Nectar Pomme", "Capri-Sun Tropical"},
	},
	{
		Label:    "☕ McCafé",
		Products: []string{"Ristretto", "Espresso", "Double Espresso", "Café Allongé", "Café Latté", "Cappuccino", "Café Latte Glacé", "Café Latte Glacé Gourmand", "Americano Glacé", "Thé Earl Grey", "Thé Vert Menthe", "Thé Citron Gingembre", "Chocolat Chaud", "Chocolat Chaud Gourmand", "Espresso Décaféiné", "Café Allongé Décaféiné", "Thé Glacé Pêche", "Délifrapp Cookie", "Délifrapp Vanille", "Smoothie Mangue Papaye", "Smoothie Banane Fraise"},
	},
}

// --------------------------------------------------
// SIZE POLICY (EXCEPTION LISTS ARE DATA, NOT RULES)
// --------------------------------------------------
// These lists changed across menu revisions, so membership is kept as
// plain tables instead of being derived from product names.

var singleSizeDrinks = []string{"Capri-Sun Tropical", "P'tit Nectar Pomme"}

var moyenGrandDrinks = []string{"Eau Plate", "Eau Pétillante"}

var singleSizeMcCafe = []string{
	"Espresso", "Ristretto", "Double Espresso", "Espresso Décaféiné",
	"Thé Glacé Pêche", "Délifrapp Cookie", "Délifrapp Vanille",
	"Smoothie Mangue Papaye", "Smoothie Banane Fraise",
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// Categories returns the menu in display order.
func Categories() []Category {
	return categories
}

// FindProduct looks a product up by exact name (accents included).
func FindProduct(name string) (Product, bool) {
	for _, cat := range categories {
		if contains(cat.Products, name) {
			return Product{Name: name, Category: cat.Label}, true
		}
	}
	return Product{}, false
}

// AllProductNames returns every product across every category, in menu order.
func AllProductNames() []string {
	var names []string
	for _, cat := range categories {
		names = append(names, cat.Products...)
	}
	return names
}

func IsDrinksCategory(label string) bool {
	return strings.Contains(strings.ToLower(label), "boissons")
}

func IsMcCafeCategory(label string) bool {
	return strings.Contains(strings.ToLower(label), "mccafé")
}

// SizesFor returns the size variants a product is tracked under. The
// empty string stands for "single format, no size". Rules are checked in
// order and the first match wins; reordering them changes the grid.
func SizesFor(product, category string) []string {
	switch {
	case contains(singleSizeDrinks, product):
		return []string{""}
	case product == "Frites":
		return []string{SizePetit, SizeMoyen, SizeGrand}
	case product == "Potatoes" || product == "Wavy Fries":
		return []string{SizeMoyen, SizeGrand}
	case IsDrinksCategory(category) && contains(moyenGrandDrinks, product):
		return []string{SizeMoyen, SizeGrand}
	case IsDrinksCategory(category):
		return []string{SizePetit, SizeMoyen, SizeGrand}
	case IsMcCafeCategory(category) && contains(singleSizeMcCafe, product):
		return []string{""}
	case IsMcCafeCategory(category):
		return []string{SizeMoyen, SizeGrand}
	default:
		return []string{""}
	}
}

// ValidSize reports whether size (empty = no size) is an allowed variant
// for the product.
func ValidSize(product, category, size string) bool {
	return contains(SizesFor(product, category), size)
}

// DefaultSize picks the size to record when the interpreter did not give
// one for a sizeable product: Grand for drinks and McCafé, no size
// otherwise.
func DefaultSize(product, category string) string {
	sizes := SizesFor(product, category)
	if len(sizes) == 1 && sizes[0] == "" {
		return ""
	}
	if IsDrinksCategory(category) || IsMcCafeCategory(category) {
		return SizeGrand
	}
	return sizes[len(sizes)-1]
}
