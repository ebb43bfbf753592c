package tests

import (
	"foodtour/catalog"
	"foodtour/geo"
)

func testCatalog() *catalog.Catalog {
	restaurants := []catalog.Restaurant{
		{
			ID: "1", Name: "Phở Thìn Lò Đúc", Address: "13 Lò Đúc, Hai Bà Trưng, Hà Nội",
			Location: geo.NewPoint(21.0170, 105.8550), CategoryID: 2,
			PriceRange: "50,000đ-80,000đ", Rating: 4.6, Tags: []string{"Phở/Bún", "Hà Nội"},
		},
		{
			ID: "2", Name: "Bánh Mì Phượng", Address: "2B Phan Châu Trinh, Hội An, Quảng Nam",
			Location: geo.NewPoint(15.8770, 108.3280), CategoryID: 1,
			PriceRange: "20,000đ-40,000đ", Rating: 4.4, Tags: []string{"Bánh mì"},
		},
		{
			ID: "3", Name: "Bún Chả Hương Liên", Address: "24 Lê Văn Hưu, Hà Nội",
			Location: geo.NewPoint(21.0180, 105.8530), CategoryID: 1,
			PriceRange: "40,000đ-90,000đ", Rating: 4.2, Tags: []string{"Phở/Bún"},
		},
		{
			ID: "4", Name: "Chay Tâm An", Address: "Quận 3, Hồ Chí Minh",
			CategoryID: 3, PriceRange: "300,000đ+", Rating: 3.9, Tags: []string{"Chay"},
		},
	}
	items := []catalog.MenuItem{
		{ID: "10", RestaurantID: "1", DishName: "Phở tái lăn", CategoryID: 2},
		{ID: "11", RestaurantID: "1", DishName: "Phở chín", CategoryID: 2},
		{ID: "12", RestaurantID: "3", DishName: "Bún chả", CategoryID: 1},
		{ID: "13", RestaurantID: "99", DishName: "Phở cuốn", CategoryID: 1},
	}
	categories := []catalog.Category{
		{ID: 1, Name: "Món khô"},
		{ID: 2, Name: "Món nước"},
		{ID: 3, Name: "Món chay"},
	}
	return catalog.New(restaurants, items, categories)
}
