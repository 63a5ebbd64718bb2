package matcher_test

import "github.com/TFMV/CredCoreMatch/internal/matcher"

// jaipurReferences mirrors the reference addresses the service is seeded with
func jaipurReferences() []matcher.ReferenceAddress {
	return []matcher.ReferenceAddress{
		{ID: "ref-01", AddressLine1: "Flat No. B-402, Shanti Heights", AddressLine2: "Near D-Mart, Mansarovar", City: "Jaipur", State: "Rajasthan", Pincode: "302020", Zone: "South", IsActive: true},
		{ID: "ref-02", AddressLine1: "H. No. 45/A, Shiv Vihar Colony", AddressLine2: "Opp. Sector 3 Park, Pratap Nagar", City: "Jaipur", State: "Rajasthan", Pincode: "302033", Zone: "South", IsActive: true},
		{ID: "ref-03", AddressLine1: "Plot 108, Sunrise Residency", AddressLine2: "Main Ajmer Road, Mahindra SEZ", City: "Jaipur", State: "Rajasthan", Pincode: "302026", Zone: "West", IsActive: true},
		{ID: "ref-04", AddressLine1: "Shop No. G-12, City Centre", AddressLine2: "M.I. Road, Near Paanch Batti", City: "Jaipur", State: "Rajasthan", Pincode: "302001", Zone: "Central", IsActive: true},
		{ID: "ref-05", AddressLine1: "K-9/14, Vaishali Marg", AddressLine2: "Behind Police Station, Vaishali Nagar", City: "Jaipur", State: "Rajasthan", Pincode: "302021", Zone: "West", IsActive: true},
		{ID: "ref-06", AddressLine1: "B-7, Gopal Marg, C-Scheme", AddressLine2: "Near Statue Circle", City: "Jaipur", State: "Rajasthan", Pincode: "302005", Zone: "Central", IsActive: true},
		{ID: "ref-07", AddressLine1: "Plot 25, Jagatpura Road", AddressLine2: "Near Jagatpura Flyover", City: "Jaipur", State: "Rajasthan", Pincode: "302025", Zone: "East", IsActive: true},
		{ID: "ref-08", AddressLine1: "House 12, Malviya Nagar", AddressLine2: "Sector 2, JLN Marg", City: "Jaipur", State: "Rajasthan", Pincode: "302017", Zone: "South", IsActive: true},
		{ID: "ref-09", AddressLine1: "Ward No. 32, Vidhyadhar Nagar", AddressLine2: "Near Akshay Patra Temple", City: "Jaipur", State: "Rajasthan", Pincode: "302039", Zone: "North", IsActive: true},
		{ID: "ref-10", AddressLine1: "F-15, Rajat Path, Mansarovar", AddressLine2: "Sector 5, Near Metro Station", City: "Jaipur", State: "Rajasthan", Pincode: "302020", Zone: "South", IsActive: true},
	}
}

func ids(results []matcher.MatchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Reference.ID
	}
	return out
}
