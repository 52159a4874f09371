package service

import "reviewhub/internal/domain"

// DefaultCategories is the compiled-in review form configuration used
// to seed an empty store.
func DefaultCategories() []domain.Category {
	phoneInput := domain.CategoryInput{ID: "phoneNumber", Label: "Mobile Number (Opt)", Placeholder: "07x xxxxxxx", Type: "tel"}

	return []domain.Category{
		{
			ID: "ride_share", Label: "Ride Share", Icon: "local_taxi",
			Color: "text-yellow-500 bg-yellow-500/10 border-yellow-500/20",
			Title: "Ride Share Experience", InputLabel: "Vehicle Number (Required)",
			InputPlaceholder: "e.g., WP ABC-1234",
			Platforms:        []string{"PickMe", "Uber", "Kangaroo", "TukTuk", "Street Hail", "Savari", "MrRider"},
			Tags: domain.CategoryTags{
				Positive: []string{"Clean Vehicle", "Safe Driving", "AC On", "Polite Driver", "Shortest Route", "Fair Price", "Returned Balance", "English Speaking", "On-Time Arrival", "Helpful with Luggage"},
				Negative: []string{"Demanding Cash", "Refused Card", "High Traffic Route", "Fuel Stop Delay", "Driver Mismatch", "Vehicle Mismatch", "Phone While Driving", "Rude/Aggressive", "Modified Meter", "No Balance Change", "Sexual Harassment", "Reckless Driving"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "driverName", Label: "Driver Name (Opt)", Placeholder: "e.g. Kamal", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "online_seller", Label: "Online Seller", Icon: "shopping_bag",
			Color: "text-blue-500 bg-blue-500/10 border-blue-500/20",
			Title: "Online Purchase", InputLabel: "Page Name / Website / Link",
			InputPlaceholder: "e.g., FashionStore.lk or FB Link",
			Platforms:        []string{"Facebook", "Instagram", "Ikman.lk", "Daraz", "TikTok", "WhatsApp Group", "Kapruka", "Amazon"},
			Tags: domain.CategoryTags{
				Positive: []string{"Fast Delivery", "Item as Described", "Good Packaging", "Responsive", "Genuine Product", "Warranty Honored", "Easy Returns"},
				Negative: []string{"No Delivery", "Fake Item", "Blocked Me", "Damaged Item", "Wrong Item", "Cash on Delivery Scam", "Hidden Charges", "Delayed Shipping"},
			},
			SecondaryInputs: []domain.CategoryInput{phoneInput},
		},
		{
			ID: "phone_scam", Label: "Phone/Spam", Icon: "phone_locked",
			Color: "text-red-500 bg-red-500/10 border-red-500/20",
			Title: "Phone / WhatsApp Report", InputLabel: "Phone Number",
			InputPlaceholder: "e.g., 077 123 4567",
			Platforms:        []string{"WhatsApp", "Voice Call", "SMS", "Viber", "Telegram", "MyDialog", "Mobitel App"},
			Tags: domain.CategoryTags{
				Positive: []string{"Helpful Support Call", "Legitimate Offer"},
				Negative: []string{"Lottery Scam", "Bank OTP Scam", "Customs Gift Scam", "Data Entry Job", "Harassment", "Wrong Number", "Silent Call", "Investment Fraud"},
			},
		},
		{
			ID: "business", Label: "Business", Icon: "store",
			Color: "text-purple-500 bg-purple-500/10 border-purple-500/20",
			Title: "Business Review", InputLabel: "Business Name",
			InputPlaceholder: "e.g., Downtown Cafe",
			Platforms:        []string{"Keells", "Cargills", "Arpico", "Local Shops"},
			Tags: domain.CategoryTags{
				Positive: []string{"Great Service", "Tasty Food", "Good Ambience", "Value for Money", "Clean Hygiene", "Friendly Staff", "Quick Checkout"},
				Negative: []string{"Bad Service", "Hidden Charges", "Hygiene Issue", "Rude Staff", "Long Wait Time", "Overpriced", "Expired Goods"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "location", Label: "Location (Opt)", Placeholder: "e.g., Colombo 07", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "freelancer", Label: "Person/Pro", Icon: "person",
			Color: "text-green-500 bg-green-500/10 border-green-500/20",
			Title: "Person / Freelancer", InputLabel: "Name / Service",
			InputPlaceholder: "e.g., Visa Consultant, Money Lender",
			Platforms:        []string{"Word of Mouth", "Facebook", "Recommendation", "Ikman.lk", "LinkedIn"},
			Tags: domain.CategoryTags{
				Positive: []string{"Professional", "On Time", "High Quality", "Good Communication", "Trustworthy", "Affordable Rates"},
				Negative: []string{"Fraud", "Late Work", "Ghosted", "Bad Quality", "Overcharged", "Unprofessional", "False Promises"},
			},
			SecondaryInputs: []domain.CategoryInput{phoneInput},
		},
		{
			ID: "food_delivery", Label: "Food Delivery", Icon: "restaurant",
			Color: "text-orange-500 bg-orange-500/10 border-orange-500/20",
			Title: "Food Delivery Experience", InputLabel: "Restaurant Name or Order ID",
			InputPlaceholder: "e.g., KFC Colombo or Order #12345",
			Platforms:        []string{"PickMe Food", "Uber Eats", "Savari Food", "MrRider", "Kapruka", "Glovo"},
			Tags: domain.CategoryTags{
				Positive: []string{"Fast Delivery", "Hot Food", "Accurate Order", "Polite Rider", "Good Packaging", "Fresh Ingredients"},
				Negative: []string{"Late Delivery", "Cold Food", "Wrong Order", "Rude Rider", "Damaged Packaging", "Missing Items", "Overpriced Delivery Fee"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "deliveryPerson", Label: "Delivery Person Name (Opt)", Placeholder: "e.g., Ravi", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "tourism", Label: "Tourism", Icon: "beach_access",
			Color: "text-teal-500 bg-teal-500/10 border-teal-500/20",
			Title: "Tourism Experience", InputLabel: "Attraction/Hotel/Tour Name",
			InputPlaceholder: "e.g., Sigiriya Rock or Galle Fort Hotel",
			Platforms:        []string{"Sri Lanka Tourism", "TripAdvisor", "Airbnb", "Booking.com"},
			Tags: domain.CategoryTags{
				Positive: []string{"Beautiful Views", "Well-Maintained", "Friendly Guides", "Value for Money", "Clean Facilities", "Safe Environment"},
				Negative: []string{"Overcrowded", "Entry Fee Scam", "Poor Maintenance", "Rude Staff", "Hidden Charges", "Fake Guides", "Tourist Trap"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "location", Label: "Location (Opt)", Placeholder: "e.g., Kandy", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "healthcare", Label: "Healthcare", Icon: "local_hospital",
			Color: "text-pink-500 bg-pink-500/10 border-pink-500/20",
			Title: "Healthcare Review", InputLabel: "Hospital/Doctor Name",
			InputPlaceholder: "e.g., Asiri Hospital or Dr. Silva",
			Platforms:        []string{"Government Hospitals", "Asiri", "Nawaloka", "Durdans", "Lanka Hospitals"},
			Tags: domain.CategoryTags{
				Positive: []string{"Quick Service", "Expert Doctors", "Clean Facility", "Affordable Treatment", "Friendly Nurses", "Accurate Diagnosis"},
				Negative: []string{"Long Queues", "Rude Staff", "Overcharged", "Misdiagnosis", "Dirty Environment", "Medicine Shortage"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "specialty", Label: "Specialty (Opt)", Placeholder: "e.g., Cardiology", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "education", Label: "Education", Icon: "school",
			Color: "text-indigo-500 bg-indigo-500/10 border-indigo-500/20",
			Title: "Education Review", InputLabel: "School/Tutor/Class Name",
			InputPlaceholder: "e.g., Royal College or Math Tutor Priya",
			Platforms:        []string{"Government Schools", "Private Tutors", "International Schools"},
			Tags: domain.CategoryTags{
				Positive: []string{"Excellent Teaching", "Supportive Staff", "Good Facilities", "Affordable Fees", "High Success Rate"},
				Negative: []string{"Poor Teaching", "Overcrowded Classes", "High Fees", "Corruption", "Bullying Issues", "Outdated Curriculum"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "subject", Label: "Subject/Level (Opt)", Placeholder: "e.g., O/L Maths", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "real_estate", Label: "Real Estate", Icon: "home",
			Color: "text-stone-500 bg-stone-500/10 border-stone-500/20",
			Title: "Real Estate Review", InputLabel: "Property/Agent Name",
			InputPlaceholder: "e.g., Colombo Apartment or Lanka Property Web",
			Platforms:        []string{"LankaPropertyWeb", "Ikman.lk Rentals", "Facebook Groups", "Agents"},
			Tags: domain.CategoryTags{
				Positive: []string{"Good Location", "Fair Price", "Well-Maintained", "Helpful Agent", "Secure Building", "Clear Deeds"},
				Negative: []string{"Fake Listings", "Overpriced Rent", "Hidden Fees", "Poor Condition", "Scam Agent", "No Refund Deposit"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "location", Label: "Location (Opt)", Placeholder: "e.g., Borella", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "telecom", Label: "Telecom", Icon: "wifi",
			Color: "text-cyan-500 bg-cyan-500/10 border-cyan-500/20",
			Title: "Telecom Review", InputLabel: "Provider Name",
			InputPlaceholder: "e.g., Dialog or Mobitel",
			Platforms:        []string{"Dialog", "Mobitel", "SLT", "Airtel", "Hutch"},
			Tags: domain.CategoryTags{
				Positive: []string{"Strong Signal", "Fast Internet", "Good Customer Support", "Affordable Plans", "Reliable Connection"},
				Negative: []string{"Poor Coverage", "Slow Speed", "Billing Errors", "Rude Support", "Hidden Charges", "Frequent Outages"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "serviceType", Label: "Service Type (Opt)", Placeholder: "e.g., Broadband", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "banking", Label: "Banking", Icon: "account_balance",
			Color: "text-yellow-600 bg-yellow-600/10 border-yellow-600/20",
			Title: "Banking Review", InputLabel: "Bank Name",
			InputPlaceholder: "e.g., Bank of Ceylon (BOC)",
			Platforms:        []string{"BOC", "People's Bank", "Commercial Bank", "HNB", "Sampath Bank", "NSB"},
			Tags: domain.CategoryTags{
				Positive: []string{"Quick Transactions", "Helpful Staff", "Secure App", "Low Fees", "Good Interest Rates"},
				Negative: []string{"Long Queues", "High Fees", "App Crashes", "Fraud Alerts Ignored", "Hidden Charges"},
			},
			SecondaryInputs: []domain.CategoryInput{
				{ID: "branch", Label: "Branch (Opt)", Placeholder: "e.g., Colombo Main", Type: "text"},
				phoneInput,
			},
		},
		{
			ID: "other", Label: "Other", Icon: "category",
			Color: "text-gray-500 bg-gray-500/10 border-gray-500/20",
			Title: "General Review", InputLabel: "Subject",
			InputPlaceholder: "What is this about?",
			Platforms:        []string{},
			Tags: domain.CategoryTags{
				Positive: []string{"Good Experience", "Helpful", "Legit", "Reliable"},
				Negative: []string{"Scam", "Bad Experience", "Waste of Time", "Fraudulent"},
			},
			SecondaryInputs: []domain.CategoryInput{phoneInput},
		},
	}
}
