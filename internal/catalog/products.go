package catalog

import "github.com/dmitrijs2005/storefront/internal/models"

func price(v float64) *float64 { return &v }

var defaultProducts = []models.Product{
	{
		ID:            "clothing-1",
		Name:          "Holiday Sweater",
		Description:   "Cozy and festive sweater perfect for Christmas gatherings",
		Price:         399,
		OriginalPrice: price(599),
		Category:      "clothing",
		Image:         "https://images.pexels.com/photos/6207047/pexels-photo-6207047.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.5,
		IsOnSale:      true,
		Sizes:         []string{"S", "M", "L", "XL"},
	},
	{
		ID:          "clothing-2",
		Name:        "Denim Jeans",
		Description: "Classic denim jeans in excellent condition",
		Price:       450,
		Category:    "clothing",
		Image:       "https://images.pexels.com/photos/1082529/pexels-photo-1082529.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.2,
		IsOnSale:    false,
		Sizes:       []string{"28", "30", "32", "34"},
	},
	{
		ID:            "clothing-3",
		Name:          "Winter Jacket",
		Description:   "Warm winter jacket with hood, perfect for cold weather",
		Price:         899,
		OriginalPrice: price(1299),
		Category:      "clothing",
		Image:         "https://images.pexels.com/photos/7679720/pexels-photo-7679720.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.7,
		IsOnSale:      true,
		Sizes:         []string{"S", "M", "L", "XL"},
	},
	{
		ID:          "clothing-4",
		Name:        "Casual T-Shirt",
		Description: "Comfortable cotton t-shirt for everyday wear",
		Price:       199,
		Category:    "clothing",
		Image:       "https://images.pexels.com/photos/5384423/pexels-photo-5384423.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.0,
		IsOnSale:    false,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
	},
	{
		ID:            "clothing-5",
		Name:          "Formal Dress",
		Description:   "Elegant formal dress for special occasions",
		Price:         799,
		OriginalPrice: price(1199),
		Category:      "clothing",
		Image:         "https://images.pexels.com/photos/1755428/pexels-photo-1755428.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.8,
		IsOnSale:      true,
		Sizes:         []string{"S", "M", "L"},
	},
	{
		ID:          "clothing-6",
		Name:        "Sports Shorts",
		Description: "Breathable sports shorts for active lifestyles",
		Price:       249,
		Category:    "clothing",
		Image:       "https://images.pexels.com/photos/2385477/pexels-photo-2385477.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.3,
		IsOnSale:    false,
		Sizes:       []string{"S", "M", "L", "XL"},
	},
	{
		ID:            "electronics-1",
		Name:          "Bluetooth Speaker",
		Description:   "Portable Bluetooth speaker with excellent sound quality",
		Price:         899,
		OriginalPrice: price(1299),
		Category:      "electronics",
		Image:         "https://images.pexels.com/photos/1706694/pexels-photo-1706694.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.6,
		IsOnSale:      true,
	},
	{
		ID:          "electronics-2",
		Name:        "Wireless Earbuds",
		Description: "Comfortable wireless earbuds with noise cancellation",
		Price:       1299,
		Category:    "electronics",
		Image:       "https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.4,
		IsOnSale:    false,
	},
	{
		ID:            "electronics-3",
		Name:          "Digital Camera",
		Description:   "High-quality digital camera for photography enthusiasts",
		Price:         3999,
		OriginalPrice: price(4999),
		Category:      "electronics",
		Image:         "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.7,
		IsOnSale:      true,
	},
	{
		ID:          "electronics-4",
		Name:        "Smart Watch",
		Description: "Feature-packed smart watch with health monitoring",
		Price:       1499,
		Category:    "electronics",
		Image:       "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.3,
		IsOnSale:    false,
	},
	{
		ID:            "electronics-5",
		Name:          "Tablet",
		Description:   "Versatile tablet for work and entertainment",
		Price:         4999,
		OriginalPrice: price(6999),
		Category:      "electronics",
		Image:         "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.5,
		IsOnSale:      true,
	},
	{
		ID:          "electronics-6",
		Name:        "Power Bank",
		Description: "High-capacity power bank for charging on the go",
		Price:       599,
		Category:    "electronics",
		Image:       "https://images.pexels.com/photos/4482900/pexels-photo-4482900.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.2,
		IsOnSale:    false,
	},
	{
		ID:            "home-decor-1",
		Name:          "Christmas Lights",
		Description:   "Colorful LED Christmas lights for festive decoration",
		Price:         299,
		OriginalPrice: price(499),
		Category:      "home-decor",
		Image:         "https://images.pexels.com/photos/250177/pexels-photo-250177.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.8,
		IsOnSale:      true,
	},
	{
		ID:          "home-decor-2",
		Name:        "Throw Pillows",
		Description: "Decorative throw pillows for your living room",
		Price:       349,
		Category:    "home-decor",
		Image:       "https://images.pexels.com/photos/6444368/pexels-photo-6444368.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.3,
		IsOnSale:    false,
	},
	{
		ID:            "home-decor-3",
		Name:          "Wall Clock",
		Description:   "Stylish wall clock to complement your home decor",
		Price:         499,
		OriginalPrice: price(699),
		Category:      "home-decor",
		Image:         "https://images.pexels.com/photos/1095601/pexels-photo-1095601.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.5,
		IsOnSale:      true,
	},
	{
		ID:          "home-decor-4",
		Name:        "Table Lamp",
		Description: "Elegant table lamp for ambient lighting",
		Price:       599,
		Category:    "home-decor",
		Image:       "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.4,
		IsOnSale:    false,
	},
	{
		ID:            "home-decor-5",
		Name:          "Christmas Wreath",
		Description:   "Festive Christmas wreath for your front door",
		Price:         399,
		OriginalPrice: price(599),
		Category:      "home-decor",
		Image:         "https://images.pexels.com/photos/6002750/pexels-photo-6002750.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.7,
		IsOnSale:      true,
	},
	{
		ID:          "home-decor-6",
		Name:        "Photo Frames",
		Description: "Set of decorative photo frames for your memories",
		Price:       299,
		Category:    "home-decor",
		Image:       "https://images.pexels.com/photos/1099816/pexels-photo-1099816.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.2,
		IsOnSale:    false,
	},
	{
		ID:            "toys-1",
		Name:          "Teddy Bear",
		Description:   "Soft and cuddly teddy bear for children",
		Price:         249,
		OriginalPrice: price(399),
		Category:      "toys",
		Image:         "https://images.pexels.com/photos/45903/pexels-photo-45903.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.6,
		IsOnSale:      true,
	},
	{
		ID:          "toys-2",
		Name:        "Building Blocks",
		Description: "Creative building blocks for imaginative play",
		Price:       349,
		Category:    "toys",
		Image:       "https://images.pexels.com/photos/163036/mario-luigi-yoschi-figures-163036.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.5,
		IsOnSale:    false,
	},
	{
		ID:            "toys-3",
		Name:          "Remote Control Car",
		Description:   "Fun remote control car for kids and adults",
		Price:         599,
		OriginalPrice: price(799),
		Category:      "toys",
		Image:         "https://images.pexels.com/photos/97353/pexels-photo-97353.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.4,
		IsOnSale:      true,
	},
	{
		ID:          "toys-4",
		Name:        "Board Game",
		Description: "Family board game for hours of entertainment",
		Price:       399,
		Category:    "toys",
		Image:       "https://images.pexels.com/photos/776654/pexels-photo-776654.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.3,
		IsOnSale:    false,
	},
	{
		ID:            "toys-5",
		Name:          "Puzzle Set",
		Description:   "Challenging puzzle set for mental stimulation",
		Price:         299,
		OriginalPrice: price(399),
		Category:      "toys",
		Image:         "https://images.pexels.com/photos/957312/pexels-photo-957312.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.2,
		IsOnSale:      true,
	},
	{
		ID:          "toys-6",
		Name:        "Doll House",
		Description: "Detailed doll house with furniture and accessories",
		Price:       899,
		Category:    "toys",
		Image:       "https://images.pexels.com/photos/5622879/pexels-photo-5622879.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.7,
		IsOnSale:    false,
	},
	{
		ID:            "kitchenware-1",
		Name:          "Cooking Pot Set",
		Description:   "Durable cooking pot set for your kitchen",
		Price:         799,
		OriginalPrice: price(1199),
		Category:      "kitchenware",
		Image:         "https://images.pexels.com/photos/4226896/pexels-photo-4226896.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.8,
		IsOnSale:      true,
	},
	{
		ID:          "kitchenware-2",
		Name:        "Knife Set",
		Description: "Professional knife set for cooking enthusiasts",
		Price:       699,
		Category:    "kitchenware",
		Image:       "https://images.pexels.com/photos/4226893/pexels-photo-4226893.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.6,
		IsOnSale:    false,
	},
	{
		ID:            "kitchenware-3",
		Name:          "Coffee Maker",
		Description:   "Automatic coffee maker for your morning brew",
		Price:         899,
		OriginalPrice: price(1299),
		Category:      "kitchenware",
		Image:         "https://images.pexels.com/photos/6312089/pexels-photo-6312089.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.5,
		IsOnSale:      true,
	},
	{
		ID:          "kitchenware-4",
		Name:        "Blender",
		Description: "Powerful blender for smoothies and food preparation",
		Price:       599,
		Category:    "kitchenware",
		Image:       "https://images.pexels.com/photos/3735238/pexels-photo-3735238.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.3,
		IsOnSale:    false,
	},
	{
		ID:            "kitchenware-5",
		Name:          "Baking Set",
		Description:   "Complete baking set for holiday treats",
		Price:         499,
		OriginalPrice: price(699),
		Category:      "kitchenware",
		Image:         "https://images.pexels.com/photos/6287295/pexels-photo-6287295.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.7,
		IsOnSale:      true,
	},
	{
		ID:          "kitchenware-6",
		Name:        "Dinnerware Set",
		Description: "Elegant dinnerware set for special occasions",
		Price:       899,
		Category:    "kitchenware",
		Image:       "https://images.pexels.com/photos/6103188/pexels-photo-6103188.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:      4.4,
		IsOnSale:    false,
	},
}

var defaultFeatured = []models.Product{
	{
		ID:            "electronics-7",
		Name:          "iPad Pro",
		Description:   "Latest generation iPad with stunning display and powerful performance",
		Price:         34999,
		OriginalPrice: price(49999),
		Category:      "electronics",
		Image:         "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg?auto=compress&cs=tinysrgb&w=1200",
		Rating:        4.5,
		IsOnSale:      true,
	},
}
