package service

import (
	"encoding/json"
	"strings"

	"foodtour/chat-svc/internal/domain"
)

type promptDish struct {
	Name        string `json:"name"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description,omitempty"`
}

type promptRestaurant struct {
	Name              string       `json:"name"`
	Address           string       `json:"address"`
	Rating            float64      `json:"rating"`
	Phone             string       `json:"phone,omitempty"`
	PriceRange        string       `json:"price_range,omitempty"`
	OpenHours         string       `json:"open_hours,omitempty"`
	RecommendedDishes []promptDish `json:"recommended_dishes,omitempty"`
}

var searchContext = map[string]string{
	domain.SearchDishOnly:        "Người dùng tìm theo MÓN ĂN. Dữ liệu dưới đây là các quán có món này.",
	domain.SearchLocationOnly:    "Người dùng tìm theo ĐỊA ĐIỂM. Dữ liệu dưới đây là các quán tại địa điểm này.",
	domain.SearchLocationAndDish: "Người dùng tìm MÓN ĂN tại một ĐỊA ĐIỂM. Kết quả đã lọc theo địa điểm rồi theo món.",
	domain.SearchNameOnly:        "Người dùng tìm theo TÊN QUÁN. Dữ liệu dưới đây là các quán có tên phù hợp.",
	domain.SearchLocationAndName: "Người dùng tìm TÊN QUÁN tại một ĐỊA ĐIỂM. Kết quả đã lọc theo địa điểm rồi theo tên.",
}

const promptRules = `Hướng dẫn:
1. Luôn dựa vào dữ liệu nhà hàng ở trên khi có.
2. Với mỗi quán, nêu tên, địa chỉ, rating, số điện thoại, giờ mở cửa và khoảng giá. Nếu có "recommended_dishes" thì liệt kê tên, giá và mô tả món.
3. Khi người dùng nhắc "quán đầu tiên", "quán này" hay "nó", hiểu là quán đã gợi ý trước đó trong cuộc trò chuyện.
4. Khi người dùng muốn lưu quán, gợi ý họ dùng tính năng yêu thích.
5. Trình bày với emoji: 📍 địa chỉ, ⭐ rating, 📞 điện thoại, 🕒 giờ mở cửa, 💰 giá. Trả lời bằng tiếng Việt, 5-8 câu.
6. Nếu không có dữ liệu phù hợp, nói rõ hệ thống chưa có thông tin.
7. Chỉ trả lời về ẩm thực Việt Nam và lịch sự từ chối chủ đề khác.`

// BuildSystemPrompt renders the search outcome into the system message the
// model answers from.
func BuildSystemPrompt(outcome domain.SearchOutcome) string {
	restaurants := make([]promptRestaurant, 0, len(outcome.Recommendations))
	for _, rec := range outcome.Recommendations {
		r := rec.Restaurant
		pr := promptRestaurant{
			Name:       r.Name,
			Address:    r.Address,
			Rating:     r.Rating,
			Phone:      r.PhoneNumber,
			PriceRange: r.PriceRange,
			OpenHours:  r.OpenHours,
		}
		for _, d := range rec.Dishes {
			pr.RecommendedDishes = append(pr.RecommendedDishes, promptDish{
				Name:        d.DishName,
				Price:       d.Price,
				Description: d.Description,
			})
		}
		restaurants = append(restaurants, pr)
	}
	data, _ := json.MarshalIndent(restaurants, "", "  ")

	baseType := strings.TrimSuffix(strings.TrimSuffix(outcome.Type, domain.SuffixPriceSorted), domain.SuffixRatingSorted)

	var b strings.Builder
	b.WriteString("Bạn là chatbot ẩm thực Việt Nam, tư vấn món ăn và nhà hàng.\n")
	if ctx, ok := searchContext[baseType]; ok {
		b.WriteString(ctx)
		b.WriteString("\n")
	}
	switch {
	case strings.HasSuffix(outcome.Type, domain.SuffixPriceSorted):
		b.WriteString("Kết quả đã sắp xếp theo giá từ rẻ đến đắt.\n")
	case strings.HasSuffix(outcome.Type, domain.SuffixRatingSorted):
		b.WriteString("Kết quả đã sắp xếp theo rating từ cao đến thấp.\n")
	}
	b.WriteString("\nDữ liệu nhà hàng từ hệ thống:\n")
	b.Write(data)
	b.WriteString("\n\n")
	b.WriteString(promptRules)
	return b.String()
}
