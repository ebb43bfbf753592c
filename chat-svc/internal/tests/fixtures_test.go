package tests

import (
	"foodtour/catalog"
)

func testCatalog() *catalog.Catalog {
	restaurants := []catalog.Restaurant{
		{ID: "1", Name: "Phở Thìn Lò Đúc", Address: "13 Lò Đúc, Hai Bà Trưng, Hà Nội", Rating: 4.6, PriceRange: "50,000đ-80,000đ", Tags: []string{"Phở/Bún"}, PhoneNumber: "024 3821 2709"},
		{ID: "2", Name: "Bánh Mì Phượng", Address: "2B Phan Châu Trinh, Hội An, Quảng Nam", Rating: 4.4, PriceRange: "20,000đ-40,000đ"},
		{ID: "3", Name: "Bún Chả Hương Liên", Address: "24 Lê Văn Hưu, Hà Nội", Rating: 4.2, PriceRange: "30,000đ-50,000đ"},
		{ID: "4", Name: "Phở Hòa Pasteur", Address: "260C Pasteur, Quận 3, TP. Hồ Chí Minh", Rating: 4.3, PriceRange: "70,000đ-120,000đ"},
		{ID: "5", Name: "Chay Tâm An", Address: "15 Nguyễn Du, Quận 1, Sài Gòn", Rating: 4.8, PriceRange: "300,000đ+", Tags: []string{"Chay"}},
	}
	items := []catalog.MenuItem{
		{ID: "10", RestaurantID: "1", DishName: "Phở bò tái", DishTags: []string{"Phở"}, Price: "60,000đ", Description: "Nước dùng trong"},
		{ID: "11", RestaurantID: "2", DishName: "Bánh mì thịt", DishTags: []string{"Bánh mì"}},
		{ID: "12", RestaurantID: "3", DishName: "Bún chả", DishTags: []string{"Bún"}},
		{ID: "13", RestaurantID: "4", DishName: "Phở gà", DishTags: []string{"Phở"}},
	}
	return catalog.New(restaurants, items, nil)
}
