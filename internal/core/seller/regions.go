package seller

import "slices"

// Country is the only country sellers can register from.
const Country = "India"

var states = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
}

var citiesByState = map[string][]string{
	"Andhra Pradesh":    {"Visakhapatnam", "Vijayawada", "Guntur", "Tirupati", "Kakinada"},
	"Arunachal Pradesh": {"Itanagar", "Naharlagun", "Tawang", "Ziro"},
	"Assam":             {"Guwahati", "Dibrugarh", "Jorhat", "Tezpur", "Silchar"},
	"Bihar":             {"Patna", "Gaya", "Bhagalpur", "Munger", "Muzaffarpur"},
	"Chhattisgarh":      {"Raipur", "Bilaspur", "Korba", "Durg", "Rajnandgaon"},
	"Goa":               {"Panaji", "Vasco da Gama", "Mapusa", "Margao"},
	"Gujarat":           {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar"},
	"Haryana":           {"Chandigarh", "Gurugram", "Faridabad", "Hisar", "Rohtak"},
	"Himachal Pradesh":  {"Shimla", "Dharamshala", "Kullu", "Manali", "Mandi"},
	"Jharkhand":         {"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro", "Deoghar"},
	"Karnataka":         {"Bengaluru", "Mysuru", "Mangaluru", "Hubballi", "Belagavi"},
	"Kerala":            {"Thiruvananthapuram", "Kochi", "Kozhikode", "Kottayam", "Thrissur"},
	"Madhya Pradesh":    {"Bhopal", "Indore", "Gwalior", "Ujjain", "Jabalpur"},
	"Maharashtra":       {"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad"},
	"Manipur":           {"Imphal", "Thoubal", "Churachandpur", "Ukhrul"},
	"Meghalaya":         {"Shillong", "Tura", "Jowai", "Nongstoin"},
	"Mizoram":           {"Aizawl", "Lunglei", "Champhai", "Kolasib"},
	"Nagaland":          {"Kohima", "Dimapur", "Mokokchung", "Wokha"},
	"Odisha":            {"Bhubaneswar", "Cuttack", "Rourkela", "Puri", "Berhampur"},
	"Punjab":            {"Chandigarh", "Amritsar", "Ludhiana", "Jalandhar", "Patiala"},
	"Rajasthan":         {"Jaipur", "Udaipur", "Jodhpur", "Ajmer", "Kota"},
	"Sikkim":            {"Gangtok", "Namchi", "Mangan"},
	"Tamil Nadu":        {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
	"Telangana":         {"Hyderabad", "Warangal", "Khammam", "Karimnagar"},
	"Tripura":           {"Agartala", "Udaipur", "Dharmanagar", "Ambassa"},
	"Uttar Pradesh":     {"Lucknow", "Kanpur", "Agra", "Varanasi", "Meerut"},
	"Uttarakhand":       {"Dehradun", "Haridwar", "Nainital", "Rishikesh", "Roorkee"},
	"West Bengal":       {"Kolkata", "Siliguri", "Durgapur", "Asansol", "Howrah"},
}

// States returns the selectable states in display order.
func States() []string {
	return slices.Clone(states)
}

// CitiesFor returns the cities of state. Unknown and empty states have none.
func CitiesFor(state string) []string {
	return slices.Clone(citiesByState[state])
}

// IsState reports whether state is one of States.
func IsState(state string) bool {
	_, ok := citiesByState[state]
	return ok
}
