package catalog

import "github.com/pkordes/trip-planner/internal/domain"

var templates = []domain.Template{
	{
		ID:          "paris-france",
		Name:        "Paris",
		Country:     "France",
		Description: "The City of Light awaits with romantic streets, world-class museums, and exquisite cuisine.",
		Itinerary: map[int][]domain.TemplateActivity{
			1: {
				plain("Arrive & Check-in", "Hotel in Central Paris", "14:00", "16:00", "Check into your accommodation and freshen up"),
				at("Evening Seine River Cruise", "Seine River, Paris", "19:00", "21:00", "Romantic evening cruise to see Paris landmarks illuminated", 48.8566, 2.3522),
			},
			2: {
				at("Louvre Museum", "Louvre Museum, Paris", "09:00", "13:00", "Visit the world's largest art museum, see the Mona Lisa", 48.8606, 2.3376),
				plain("Lunch at Café de Flore", "Café de Flore, Saint-Germain", "13:30", "15:00", "Historic café experience in Saint-Germain"),
				at("Notre-Dame Cathedral Area", "Notre-Dame de Paris", "15:30", "17:30", "Explore the cathedral area and Île de la Cité", 48.8530, 2.3499),
			},
			3: {
				at("Eiffel Tower Visit", "Eiffel Tower, Paris", "09:00", "12:00", "Climb or take elevator to the top of Paris's iconic landmark", 48.8584, 2.2945),
				at("Champs-Élysées Shopping", "Champs-Élysées, Paris", "14:00", "17:00", "Shop along the famous avenue and visit Arc de Triomphe", 48.8698, 2.3076),
			},
			4: {
				at("Montmartre & Sacré-Cœur", "Montmartre, Paris", "10:00", "14:00", "Explore the artistic district and visit the basilica", 48.8867, 2.3431),
				at("Moulin Rouge Show", "Moulin Rouge, Paris", "21:00", "23:00", "Evening cabaret show (booking required)", 48.8842, 2.3322),
			},
			5: {
				at("Palace of Versailles", "Palace of Versailles", "09:00", "17:00", "Day trip to the magnificent palace and gardens", 48.8049, 2.1204),
			},
			6: {
				plain("Marais District Walking Tour", "Le Marais, Paris", "10:00", "13:00", "Explore the historic Jewish quarter and trendy boutiques"),
				at("Latin Quarter & Panthéon", "Latin Quarter, Paris", "14:30", "17:30", "Discover the intellectual heart of Paris", 48.8462, 2.3464),
			},
			7: {
				plain("Last-minute Shopping", "Galeries Lafayette, Paris", "10:00", "12:00", "Final souvenir shopping at the famous department store"),
				plain("Farewell Lunch", "Restaurant in Saint-Germain", "12:30", "14:30", "Final French meal before departure"),
			},
		},
	},
	{
		ID:          "tokyo-japan",
		Name:        "Tokyo",
		Country:     "Japan",
		Description: "A fascinating blend of ancient traditions and cutting-edge modernity.",
		Itinerary: map[int][]domain.TemplateActivity{
			1: {
				plain("Arrive & Check-in", "Hotel in Shibuya or Shinjuku", "15:00", "17:00", "Check into accommodation and get oriented"),
				at("Shibuya Crossing Experience", "Shibuya Crossing, Tokyo", "18:00", "20:00", "Experience the world's busiest pedestrian crossing", 35.6598, 139.7006),
			},
			2: {
				at("Senso-ji Temple", "Senso-ji Temple, Asakusa", "09:00", "11:30", "Visit Tokyo's oldest temple and explore traditional Asakusa", 35.7148, 139.7967),
				at("Tokyo Skytree", "Tokyo Skytree", "13:00", "15:30", "Panoramic views from Japan's tallest structure", 35.7101, 139.8107),
				plain("Traditional Dinner in Asakusa", "Traditional Restaurant, Asakusa", "18:00", "20:00", "Authentic Japanese cuisine experience"),
			},
			3: {
				at("Tsukiji Outer Market", "Tsukiji Outer Market", "07:00", "10:00", "Fresh sushi breakfast and market exploration", 35.6654, 139.7707),
				at("Imperial Palace Gardens", "Imperial Palace East Gardens", "11:00", "13:00", "Peaceful gardens in the heart of Tokyo", 35.6852, 139.7528),
				at("Ginza Shopping District", "Ginza, Tokyo", "14:00", "17:00", "Upscale shopping and department stores", 35.6762, 139.7653),
			},
			4: {
				at("Meiji Shrine", "Meiji Shrine, Shibuya", "09:00", "11:00", "Serene Shinto shrine dedicated to Emperor Meiji", 35.6763, 139.6993),
				at("Harajuku & Takeshita Street", "Harajuku, Tokyo", "11:30", "14:00", "Youth culture, fashion, and quirky shops", 35.6702, 139.7026),
				at("Roppongi Nightlife", "Roppongi, Tokyo", "19:00", "23:00", "International nightlife district", 35.6627, 139.7279),
			},
			5: {
				at("Day Trip to Nikko", "Nikko, Japan", "08:00", "19:00", "UNESCO World Heritage shrines and natural beauty", 36.7587, 139.6097),
			},
			6: {
				at("Ueno Park & Museums", "Ueno Park, Tokyo", "10:00", "14:00", "Tokyo National Museum and park stroll", 35.7153, 139.7742),
				at("Akihabara Electronics District", "Akihabara, Tokyo", "15:00", "18:00", "Electronics, anime, and manga culture", 35.7022, 139.7743),
			},
			7: {
				at("Tokyo Station Shopping", "Tokyo Station", "10:00", "12:00", "Last-minute shopping for omiyage (souvenirs)", 35.6812, 139.7671),
				plain("Final Ramen Experience", "Ramen Shop near Tokyo Station", "12:30", "14:00", "One last authentic ramen before departure"),
			},
		},
	},
	{
		ID:          "new-york-usa",
		Name:        "New York City",
		Country:     "USA",
		Description: "The city that never sleeps, offering world-class attractions and endless energy.",
		Itinerary: map[int][]domain.TemplateActivity{
			1: {
				plain("Arrive & Check-in", "Hotel in Manhattan", "15:00", "17:00", "Check into accommodation and get settled"),
				at("Times Square Evening", "Times Square, NYC", "18:00", "21:00", "Experience the bright lights and energy of Times Square", 40.7580, -73.9855),
			},
			2: {
				at("Statue of Liberty & Ellis Island", "Liberty Island, NYC", "09:00", "14:00", "Ferry to iconic statue and immigration museum", 40.6892, -74.0445),
				at("Wall Street & 9/11 Memorial", "Financial District, NYC", "15:00", "17:30", "Historic financial district and moving memorial", 40.7115, -74.0134),
			},
			3: {
				at("Central Park", "Central Park, NYC", "09:00", "12:00", "Morning stroll through NYC's green oasis", 40.7829, -73.9654),
				at("Metropolitan Museum of Art", "The Met, NYC", "13:00", "16:00", "World-renowned art collections", 40.7794, -73.9632),
				at("Broadway Show", "Theater District, NYC", "20:00", "23:00", "Classic Broadway musical experience", 40.7590, -73.9845),
			},
			4: {
				at("Empire State Building", "Empire State Building, NYC", "09:00", "11:00", "Iconic skyscraper with panoramic city views", 40.7484, -73.9857),
				at("High Line Park", "High Line, NYC", "12:00", "14:00", "Elevated park built on former railway", 40.7480, -74.0048),
				at("Chelsea Market", "Chelsea Market, NYC", "14:30", "16:30", "Indoor food hall and shopping", 40.7420, -74.0063),
			},
			5: {
				at("Brooklyn Bridge Walk", "Brooklyn Bridge, NYC", "09:00", "11:00", "Iconic bridge walk with skyline views", 40.7061, -73.9969),
				at("DUMBO & Brooklyn Heights", "DUMBO, Brooklyn", "11:30", "15:00", "Trendy waterfront area with amazing views", 40.7033, -73.9888),
				at("Little Italy & Chinatown", "Little Italy, NYC", "16:00", "19:00", "Cultural neighborhoods and authentic cuisine", 40.7193, -73.9969),
			},
			6: {
				at("Top of the Rock", "Rockefeller Center, NYC", "10:00", "12:00", "Best views of the Empire State Building", 40.7587, -73.9787),
				at("Museum of Modern Art (MoMA)", "MoMA, NYC", "13:00", "16:00", "World's most influential modern art collection", 40.7614, -73.9776),
				at("Fifth Avenue Shopping", "Fifth Avenue, NYC", "16:30", "19:00", "Luxury shopping and flagship stores", 40.7549, -73.9840),
			},
			7: {
				at("One World Observatory", "One World Trade Center, NYC", "10:00", "12:00", "Panoramic views from the tallest building in NYC", 40.7127, -74.0134),
				at("Final Shopping & Farewell", "SoHo, NYC", "13:00", "16:00", "Last-minute shopping in trendy SoHo district", 40.7230, -74.0030),
			},
		},
	},
}
