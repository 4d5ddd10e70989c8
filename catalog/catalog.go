// Package catalog holds the static product list and category labels.
// Defined once at startup, read-only at runtime.
package catalog

import "bakehouse/models"

var categories = []models.CategoryLabel{
	{ID: "all", Name: "All Items"},
	{ID: "african", Name: "African Dishes"},
	{ID: "bakery", Name: "Bakery & Pastries"},
	{ID: "drinks", Name: "Drinks & Desserts"},
}

var products = []models.Product{
	{
		ID:          1,
		Name:        "Oguishi Soup",
		Category:    models.CategoryAfrican,
		Price:       85000,
		Image:       "/static/catalog/african-oguishi-soup.jpg",
		Description: "Traditional African soup with rich flavors and fresh ingredients",
		LongDescription: "Our signature Oguishi Soup is a traditional African delicacy made with " +
			"fresh vegetables, spices, and your choice of protein. Served with fufu or rice for a complete meal.",
		AddOns: []models.AddOn{
			{ID: 1, Name: "Extra Meat", Price: 15000},
			{ID: 2, Name: "Extra Fish", Price: 12000},
			{ID: 3, Name: "Fufu", Price: 10000},
		},
		Featured:    true,
		Rating:      4.8,
		ReviewCount: 124,
	},
	{
		ID:          2,
		Name:        "Jollof Rice",
		Category:    models.CategoryAfrican,
		Price:       65000,
		Image:       "/static/catalog/jollof-rice-chicken.png",
		Description: "Classic West African jollof rice with chicken and vegetables",
		LongDescription: "Our famous Jollof Rice is cooked to perfection with tomatoes, peppers, and " +
			"aromatic spices. Served with tender chicken and a side of fried plantains.",
		AddOns: []models.AddOn{
			{ID: 4, Name: "Extra Chicken", Price: 18000},
			{ID: 5, Name: "Fried Plantain", Price: 8000},
			{ID: 6, Name: "Coleslaw", Price: 5000},
		},
		Featured:    true,
		Rating:      4.9,
		ReviewCount: 198,
	},
	{
		ID:          3,
		Name:        "Cassava Leaves",
		Category:    models.CategoryAfrican,
		Price:       75000,
		Image:       "/static/catalog/cassava-leaves-stew.jpg",
		Description: "Traditional cassava leaves stew with fish and meat",
		LongDescription: "A Sierra Leonean favorite! Our Cassava Leaves are slow-cooked with palm oil, " +
			"fish, and meat until tender and flavorful. Served with rice or fufu.",
		AddOns: []models.AddOn{
			{ID: 7, Name: "Extra Fish", Price: 15000},
			{ID: 8, Name: "Extra Meat", Price: 18000},
			{ID: 9, Name: "Rice", Price: 10000},
		},
		Featured:    true,
		Rating:      4.7,
		ReviewCount: 156,
	},
	{
		ID:          4,
		Name:        "Meat Pie",
		Category:    models.CategoryBakery,
		Price:       15000,
		Image:       "/static/catalog/african-meat-pie-pastry.jpg",
		Description: "Freshly baked meat pie with savory filling",
		LongDescription: "Our signature Meat Pie features a flaky, golden crust filled with seasoned " +
			"ground beef, potatoes, and vegetables. Baked fresh daily.",
		AddOns: []models.AddOn{
			{ID: 10, Name: "Extra Pie", Price: 15000},
			{ID: 11, Name: "Soft Drink", Price: 5000},
		},
		Featured:    true,
		Rating:      4.6,
		ReviewCount: 289,
	},
	{
		ID:          5,
		Name:        "Fish Roll",
		Category:    models.CategoryBakery,
		Price:       12000,
		Image:       "/static/catalog/fish-roll-pastry.jpg",
		Description: "Crispy fish roll with seasoned fish filling",
		LongDescription: "Delicious fish rolls made with fresh fish, onions, and spices, wrapped in a " +
			"crispy pastry shell. Perfect for a quick snack or light meal.",
		AddOns: []models.AddOn{
			{ID: 12, Name: "Extra Roll", Price: 12000},
			{ID: 13, Name: "Hot Sauce", Price: 2000},
		},
		Rating:      4.5,
		ReviewCount: 167,
	},
	{
		ID:          6,
		Name:        "Fresh Bread",
		Category:    models.CategoryBakery,
		Price:       8000,
		Image:       "/static/catalog/fresh-baked-bread-loaf.jpg",
		Description: "Freshly baked bread, soft and warm",
		LongDescription: "Our bread is baked fresh every morning using quality ingredients. Soft, " +
			"fluffy, and perfect for sandwiches or enjoying with butter.",
		AddOns: []models.AddOn{
			{ID: 14, Name: "Butter", Price: 3000},
			{ID: 15, Name: "Jam", Price: 4000},
		},
		Rating:      4.8,
		ReviewCount: 312,
	},
	{
		ID:          7,
		Name:        "Birthday Cake",
		Category:    models.CategoryBakery,
		Price:       250000,
		Image:       "/static/catalog/decorated-birthday-cake.jpg",
		Description: "Custom birthday cake with your choice of flavor and design",
		LongDescription: "Celebrate special moments with our custom birthday cakes. Available in " +
			"various flavors including chocolate, vanilla, and red velvet. Custom designs available upon request.",
		AddOns: []models.AddOn{
			{ID: 16, Name: "Extra Layer", Price: 50000},
			{ID: 17, Name: "Custom Message", Price: 10000},
			{ID: 18, Name: "Candles", Price: 5000},
		},
		Variants: []models.ProductVariant{
			{ID: 1, Name: "Small (6 inch)", Price: 250000, Description: "Serves 6-8 people"},
			{ID: 2, Name: "Medium (8 inch)", Price: 350000, Description: "Serves 12-15 people"},
			{ID: 3, Name: "Large (10 inch)", Price: 450000, Description: "Serves 20-25 people"},
		},
		Featured:    true,
		Rating:      4.9,
		ReviewCount: 145,
	},
	{
		ID:          8,
		Name:        "Egusi Soup",
		Category:    models.CategoryAfrican,
		Price:       80000,
		Image:       "/static/catalog/egusi-soup-african.jpg",
		Description: "Rich egusi soup with melon seeds and vegetables",
		LongDescription: "Traditional West African soup made with ground melon seeds, leafy " +
			"vegetables, and your choice of meat or fish. A nutritious and delicious meal.",
		AddOns: []models.AddOn{
			{ID: 19, Name: "Extra Meat", Price: 15000},
			{ID: 20, Name: "Extra Fish", Price: 12000},
			{ID: 21, Name: "Pounded Yam", Price: 15000},
		},
		Rating:      4.7,
		ReviewCount: 178,
	},
	{
		ID:          9,
		Name:        "Ice Cream",
		Category:    models.CategoryDrinks,
		Price:       20000,
		Image:       "/static/catalog/ice-cream-cone.png",
		Description: "Creamy ice cream in various flavors",
		LongDescription: "Cool down with our delicious ice cream available in multiple flavors " +
			"including vanilla, chocolate, strawberry, and more.",
		AddOns: []models.AddOn{
			{ID: 22, Name: "Extra Scoop", Price: 10000},
			{ID: 23, Name: "Toppings", Price: 5000},
		},
		Rating:      4.6,
		ReviewCount: 201,
	},
	{
		ID:          10,
		Name:        "Fufu with Okra",
		Category:    models.CategoryAfrican,
		Price:       70000,
		Image:       "/static/catalog/fufu-with-okra-soup.jpg",
		Description: "Traditional fufu served with okra soup",
		LongDescription: "Smooth, stretchy fufu paired with our delicious okra soup. A classic " +
			"African combination that's both filling and flavorful.",
		AddOns: []models.AddOn{
			{ID: 24, Name: "Extra Fufu", Price: 12000},
			{ID: 25, Name: "Extra Soup", Price: 15000},
			{ID: 26, Name: "Fish", Price: 12000},
		},
		Rating:      4.5,
		ReviewCount: 192,
	},
	{
		ID:          11,
		Name:        "Acheke",
		Category:    models.CategoryAfrican,
		Price:       55000,
		Image:       "/static/catalog/acheke-african-dish.jpg",
		Description: "West African couscous with fish and vegetables",
		LongDescription: "Acheke is a popular West African dish made from fermented cassava " +
			"couscous, served with fried fish, onions, and tomatoes.",
		AddOns: []models.AddOn{
			{ID: 27, Name: "Extra Fish", Price: 15000},
			{ID: 28, Name: "Extra Vegetables", Price: 8000},
		},
		Rating:      4.6,
		ReviewCount: 134,
	},
	{
		ID:          12,
		Name:        "Bubble Milk",
		Category:    models.CategoryDrinks,
		Price:       18000,
		Image:       "/static/catalog/bubble-milk-tea-drink.jpg",
		Description: "Refreshing bubble milk tea with tapioca pearls",
		LongDescription: "Creamy milk tea with chewy tapioca pearls. Available in various flavors " +
			"for a refreshing treat.",
		AddOns: []models.AddOn{
			{ID: 29, Name: "Extra Pearls", Price: 5000},
			{ID: 30, Name: "Less Sugar", Price: 0},
		},
		Rating:      4.7,
		ReviewCount: 167,
	},
}

// All returns every catalog product.
func All() []models.Product {
	return products
}

// ByID finds a product by its id.
func ByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory filters products by category id; "all" or "" returns everything.
func ByCategory(cat string) []models.Product {
	if cat == "" || cat == "all" {
		return products
	}
	out := []models.Product{}
	for _, p := range products {
		if string(p.Category) == cat {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products highlighted on the home page.
func Featured() []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the category labels shown in the menu filter.
func Categories() []models.CategoryLabel {
	return categories
}
