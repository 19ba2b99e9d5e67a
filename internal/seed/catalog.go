package seed

// Starter catalog of real UK brands across the three launch categories.
var catalog = []product{
	{
		ExternalID: "nb001", Brand: "Pip & Nut", Name: "Crunchy Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1600189261867-30e5ffe7b8da?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 300, Price: 3.50,
		Nutrition: nutrition{Sugar: 4.6, Salt: 0.44, Protein: 29.6, Fiber: 5.4},
		Scores:    scores{Health: 85, PricePenalty: 0.1, Value: 82},
	},
	{
		ExternalID: "nb002", Brand: "Whole Earth", Name: "Organic Smooth Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1586377434098-dfd0c0a8e8e6?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 340, Price: 3.80,
		Nutrition: nutrition{Sugar: 3.5, Salt: 0.01, Protein: 25.0, Fiber: 6.0},
		Scores:    scores{Health: 90, PricePenalty: 0.15, Value: 85},
	},
	{
		ExternalID: "nb003", Brand: "Meridian", Name: "Crunchy Almond Butter",
		ImageURL: "https://images.unsplash.com/photo-1612830384187-94ec0b18b3cb?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 280, Price: 5.50,
		Nutrition: nutrition{Sugar: 4.2, Salt: 0.01, Protein: 21.1, Fiber: 7.4},
		Scores:    scores{Health: 88, PricePenalty: 0.25, Value: 75},
	},
	{
		ExternalID: "nb004", Brand: "Sun-Pat", Name: "Smooth Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1600189261867-30e5ffe7b8da?w=400",
		Category: "Nut Butter", DietaryType: "Vegetarian", WeightGrams: 400, Price: 2.80,
		Nutrition: nutrition{Sugar: 6.7, Salt: 0.88, Protein: 22.6, Fiber: 5.3, Additives: true},
		Scores:    scores{Health: 65, PricePenalty: 0.05, Value: 70},
	},
	{
		ExternalID: "nb005", Brand: "Manilife", Name: "Deep Roast Crunchy Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1598511757337-fe2cafc31ba0?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 295, Price: 4.99,
		Nutrition: nutrition{Sugar: 4.0, Salt: 0.02, Protein: 30.2, Fiber: 8.1},
		Scores:    scores{Health: 92, PricePenalty: 0.2, Value: 80},
	},
	{
		ExternalID: "nb006", Brand: "Biona", Name: "Organic Cashew Butter",
		ImageURL: "https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 170, Price: 6.20,
		Nutrition: nutrition{Sugar: 5.0, Salt: 0.01, Protein: 18.2, Fiber: 3.2},
		Scores:    scores{Health: 82, PricePenalty: 0.35, Value: 65},
	},
	{
		ExternalID: "nb007", Brand: "Bulk", Name: "Natural Peanut Butter 1kg",
		ImageURL: "https://images.unsplash.com/photo-1600189261867-30e5ffe7b8da?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 1000, Price: 7.99,
		Nutrition: nutrition{Sugar: 4.3, Salt: 0.01, Protein: 28.0, Fiber: 6.5},
		Scores:    scores{Health: 88, PricePenalty: 0.0, Value: 95},
	},
	{
		ExternalID: "nb008", Brand: "Skippy", Name: "Super Chunk Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1598511757337-fe2cafc31ba0?w=400",
		Category: "Nut Butter", DietaryType: "Vegetarian", WeightGrams: 340, Price: 3.25,
		Nutrition: nutrition{Sugar: 7.5, Salt: 1.12, Protein: 22.0, Fiber: 4.8, Additives: true},
		Scores:    scores{Health: 58, PricePenalty: 0.08, Value: 62},
	},
	{
		ExternalID: "nb009", Brand: "Myprotein", Name: "All-Natural Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1612830384187-94ec0b18b3cb?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 1000, Price: 8.49,
		Nutrition: nutrition{Sugar: 5.2, Salt: 0.01, Protein: 29.5, Fiber: 7.0},
		Scores:    scores{Health: 86, PricePenalty: 0.0, Value: 92},
	},
	{
		ExternalID: "nb010", Brand: "Nutty Bruce", Name: "Activated Almond Butter",
		ImageURL: "https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 250, Price: 7.50,
		Nutrition: nutrition{Sugar: 2.8, Salt: 0.01, Protein: 19.5, Fiber: 9.2},
		Scores:    scores{Health: 94, PricePenalty: 0.3, Value: 72},
	},
	{
		ExternalID: "nb011", Brand: "Tesco", Name: "Smooth Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1600189261867-30e5ffe7b8da?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 340, Price: 1.85,
		Nutrition: nutrition{Sugar: 5.8, Salt: 0.65, Protein: 24.0, Fiber: 5.0, Additives: true},
		Scores:    scores{Health: 68, PricePenalty: 0.0, Value: 78},
	},
	{
		ExternalID: "nb012", Brand: "Sainsbury's", Name: "Crunchy Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1598511757337-fe2cafc31ba0?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 340, Price: 1.90,
		Nutrition: nutrition{Sugar: 5.5, Salt: 0.60, Protein: 24.5, Fiber: 5.2, Additives: true},
		Scores:    scores{Health: 70, PricePenalty: 0.0, Value: 80},
	},
	{
		ExternalID: "nb013", Brand: "Aldi Bramwells", Name: "Crunchy Peanut Butter",
		ImageURL: "https://images.unsplash.com/photo-1600189261867-30e5ffe7b8da?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 340, Price: 1.49,
		Nutrition: nutrition{Sugar: 5.9, Salt: 0.70, Protein: 23.5, Fiber: 4.8, Additives: true},
		Scores:    scores{Health: 66, PricePenalty: 0.0, Value: 82},
	},
	{
		ExternalID: "nb014", Brand: "Carley's", Name: "Organic Raw Almond Butter",
		ImageURL: "https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 250, Price: 8.99,
		Nutrition: nutrition{Sugar: 3.0, Salt: 0.01, Protein: 20.5, Fiber: 8.5},
		Scores:    scores{Health: 93, PricePenalty: 0.35, Value: 68},
	},
	{
		ExternalID: "nb015", Brand: "Yumello", Name: "Smooth Hazelnut Butter",
		ImageURL: "https://images.unsplash.com/photo-1612830384187-94ec0b18b3cb?w=400",
		Category: "Nut Butter", DietaryType: "Vegan", WeightGrams: 170, Price: 5.99,
		Nutrition: nutrition{Sugar: 3.5, Salt: 0.01, Protein: 15.0, Fiber: 6.8},
		Scores:    scores{Health: 84, PricePenalty: 0.32, Value: 66},
	},
	{
		ExternalID: "pm001", Brand: "Oatly", Name: "Barista Edition Oat Milk",
		ImageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 2.00,
		Nutrition: nutrition{Sugar: 3.0, Salt: 0.10, Protein: 1.0, Fiber: 0.8},
		Scores:    scores{Health: 78, PricePenalty: 0.15, Value: 75},
	},
	{
		ExternalID: "pm002", Brand: "Alpro", Name: "Unsweetened Almond Milk",
		ImageURL: "https://images.unsplash.com/photo-1556881261-e41e8e5f5de7?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 1.80,
		Nutrition: nutrition{Sugar: 0.0, Salt: 0.13, Protein: 0.5, Fiber: 0.4},
		Scores:    scores{Health: 85, PricePenalty: 0.1, Value: 82},
	},
	{
		ExternalID: "pm003", Brand: "Minor Figures", Name: "Organic Oat Milk",
		ImageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 2.50,
		Nutrition: nutrition{Sugar: 3.2, Salt: 0.05, Protein: 0.8, Fiber: 0.5},
		Scores:    scores{Health: 80, PricePenalty: 0.2, Value: 72},
	},
	{
		ExternalID: "pm004", Brand: "Alpro", Name: "Soya Original",
		ImageURL: "https://images.unsplash.com/photo-1556881261-e41e8e5f5de7?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 1.65,
		Nutrition: nutrition{Sugar: 2.5, Salt: 0.06, Protein: 3.0, Fiber: 0.5},
		Scores:    scores{Health: 88, PricePenalty: 0.05, Value: 88},
	},
	{
		ExternalID: "pm005", Brand: "Rude Health", Name: "Organic Coconut Milk",
		ImageURL: "https://images.unsplash.com/photo-1625772299848-391b6a87d7b3?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 2.75,
		Nutrition: nutrition{Sugar: 2.8, Salt: 0.03, Protein: 0.2, Fiber: 0.0},
		Scores:    scores{Health: 72, PricePenalty: 0.22, Value: 68},
	},
	{
		ExternalID: "pm006", Brand: "Califia Farms", Name: "Oat Barista Blend",
		ImageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 750, Price: 2.80,
		Nutrition: nutrition{Sugar: 4.0, Salt: 0.08, Protein: 0.5, Fiber: 0.4},
		Scores:    scores{Health: 74, PricePenalty: 0.28, Value: 65},
	},
	{
		ExternalID: "pm007", Brand: "Plenish", Name: "Organic Unsweetened Almond",
		ImageURL: "https://images.unsplash.com/photo-1556881261-e41e8e5f5de7?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 2.99,
		Nutrition: nutrition{Sugar: 0.1, Salt: 0.10, Protein: 1.2, Fiber: 0.5},
		Scores:    scores{Health: 90, PricePenalty: 0.25, Value: 75},
	},
	{
		ExternalID: "pm008", Brand: "Tesco", Name: "Unsweetened Soya Milk",
		ImageURL: "https://images.unsplash.com/photo-1556881261-e41e8e5f5de7?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 0.95,
		Nutrition: nutrition{Sugar: 0.2, Salt: 0.08, Protein: 3.3, Fiber: 0.6, Additives: true},
		Scores:    scores{Health: 82, PricePenalty: 0.0, Value: 92},
	},
	{
		ExternalID: "pm009", Brand: "Koko", Name: "Coconut Milk Original",
		ImageURL: "https://images.unsplash.com/photo-1625772299848-391b6a87d7b3?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 1.85,
		Nutrition: nutrition{Sugar: 2.0, Salt: 0.12, Protein: 0.2, Fiber: 0.0, Additives: true},
		Scores:    scores{Health: 70, PricePenalty: 0.1, Value: 72},
	},
	{
		ExternalID: "pm010", Brand: "Oatly", Name: "Organic Oat Drink",
		ImageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 2.25,
		Nutrition: nutrition{Sugar: 4.1, Salt: 0.10, Protein: 1.0, Fiber: 1.5},
		Scores:    scores{Health: 76, PricePenalty: 0.18, Value: 74},
	},
	{
		ExternalID: "pm011", Brand: "Provamel", Name: "Organic Soya Unsweetened",
		ImageURL: "https://images.unsplash.com/photo-1556881261-e41e8e5f5de7?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 2.10,
		Nutrition: nutrition{Sugar: 0.0, Salt: 0.04, Protein: 3.6, Fiber: 0.6},
		Scores:    scores{Health: 92, PricePenalty: 0.15, Value: 85},
	},
	{
		ExternalID: "pm012", Brand: "Sproud", Name: "Pea Milk Barista",
		ImageURL: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
		Category: "Plant-Based Milk", DietaryType: "Vegan", WeightGrams: 1000, Price: 2.40,
		Nutrition: nutrition{Sugar: 2.5, Salt: 0.15, Protein: 3.0, Fiber: 0.3},
		Scores:    scores{Health: 84, PricePenalty: 0.18, Value: 78},
	},
	{
		ExternalID: "pp001", Brand: "Vega", Name: "Protein & Greens Chocolate",
		ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 614, Price: 34.99,
		Nutrition: nutrition{Sugar: 1.0, Salt: 0.45, Protein: 70.0, Fiber: 3.5},
		Scores:    scores{Health: 88, PricePenalty: 0.3, Value: 72},
	},
	{
		ExternalID: "pp002", Brand: "Myprotein", Name: "Vegan Protein Blend Chocolate",
		ImageURL: "https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 1000, Price: 24.99,
		Nutrition: nutrition{Sugar: 0.5, Salt: 1.0, Protein: 72.0, Fiber: 2.0},
		Scores:    scores{Health: 85, PricePenalty: 0.1, Value: 88},
	},
	{
		ExternalID: "pp003", Brand: "Bulk", Name: "Vegan Protein Powder Strawberry",
		ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 1000, Price: 21.99,
		Nutrition: nutrition{Sugar: 1.2, Salt: 0.8, Protein: 75.0, Fiber: 1.5},
		Scores:    scores{Health: 87, PricePenalty: 0.05, Value: 92},
	},
	{
		ExternalID: "pp004", Brand: "Garden of Life", Name: "Raw Organic Protein Vanilla",
		ImageURL: "https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 620, Price: 42.99,
		Nutrition: nutrition{Sugar: 0.0, Salt: 0.35, Protein: 66.0, Fiber: 5.0},
		Scores:    scores{Health: 94, PricePenalty: 0.4, Value: 68},
	},
	{
		ExternalID: "pp005", Brand: "Nutricis", Name: "Pea Protein Isolate",
		ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 1000, Price: 18.99,
		Nutrition: nutrition{Sugar: 0.0, Salt: 1.5, Protein: 80.0, Fiber: 0.5},
		Scores:    scores{Health: 82, PricePenalty: 0.0, Value: 95},
	},
	{
		ExternalID: "pp006", Brand: "PhD", Name: "Smart Protein Plant Chocolate",
		ImageURL: "https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 500, Price: 22.50,
		Nutrition: nutrition{Sugar: 1.5, Salt: 0.55, Protein: 68.0, Fiber: 4.0, Additives: true},
		Scores:    scores{Health: 78, PricePenalty: 0.2, Value: 74},
	},
	{
		ExternalID: "pp007", Brand: "Sunwarrior", Name: "Warrior Blend Mocha",
		ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 750, Price: 38.99,
		Nutrition: nutrition{Sugar: 1.0, Salt: 0.40, Protein: 71.0, Fiber: 3.0},
		Scores:    scores{Health: 90, PricePenalty: 0.35, Value: 70},
	},
	{
		ExternalID: "pp008", Brand: "Pulsin", Name: "Pea Protein Natural",
		ImageURL: "https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 250, Price: 9.99,
		Nutrition: nutrition{Sugar: 0.0, Salt: 1.2, Protein: 78.0, Fiber: 0.5},
		Scores:    scores{Health: 84, PricePenalty: 0.15, Value: 80},
	},
	{
		ExternalID: "pp009", Brand: "Huel", Name: "Complete Protein Chocolate",
		ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 780, Price: 30.00,
		Nutrition: nutrition{Sugar: 0.5, Salt: 0.50, Protein: 75.0, Fiber: 2.5},
		Scores:    scores{Health: 89, PricePenalty: 0.22, Value: 78},
	},
	{
		ExternalID: "pp010", Brand: "Orgain", Name: "Organic Protein Vanilla",
		ImageURL: "https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 920, Price: 32.50,
		Nutrition: nutrition{Sugar: 0.0, Salt: 0.38, Protein: 64.0, Fiber: 7.0},
		Scores:    scores{Health: 91, PricePenalty: 0.25, Value: 76},
	},
	{
		ExternalID: "pp011", Brand: "Naturya", Name: "Hemp Protein Powder",
		ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 300, Price: 12.99,
		Nutrition: nutrition{Sugar: 2.5, Salt: 0.05, Protein: 50.0, Fiber: 18.0},
		Scores:    scores{Health: 86, PricePenalty: 0.18, Value: 79},
	},
	{
		ExternalID: "pp012", Brand: "THE PROTEIN WORKS", Name: "Vegan Wondershake Chocolate",
		ImageURL: "https://images.unsplash.com/photo-1579722821273-0f6c7d44362f?w=400",
		Category: "Protein Powder", DietaryType: "Vegan", WeightGrams: 750, Price: 26.99,
		Nutrition: nutrition{Sugar: 2.0, Salt: 0.65, Protein: 70.0, Fiber: 3.2, Additives: true},
		Scores:    scores{Health: 80, PricePenalty: 0.15, Value: 77},
	},
}
