package entity

import "strings"

// Campaign is a static descriptive fundraising drive shown in the catalog.
// Campaigns are defined at build time and immutable at runtime. RaisedAmount
// is display-only and intentionally not derived from the donation ledger;
// donations are recorded by category, not by campaign.
type Campaign struct {
	ID           string
	Category     Category
	Title        string
	Description  string
	GoalAmount   string
	RaisedAmount string
}

// CategoryAll is the catalog filter value that matches every campaign
const CategoryAll = "All"

var campaignCatalog = []Campaign{
	{
		ID:           "1",
		Category:     CategoryHealth,
		Title:        "Medical Aid for PWDs of Barangay Kalayaan",
		Description:  "Wheelchairs and medical kits for PWDs in Barangay Kalayaan. Your help provides mobility and dignity.",
		GoalAmount:   "18000.00",
		RaisedAmount: "6900.00",
	},
	{
		ID:           "2",
		Category:     CategoryEmergency,
		Title:        "Relief Goods for Typhoon Victims",
		Description:  "Families have lost their homes in the recent storm. Funds go to food packs, blankets, and clean water.",
		GoalAmount:   "50000.00",
		RaisedAmount: "12400.00",
	},
	{
		ID:           "3",
		Category:     CategoryChildren,
		Title:        "School Supplies for Rural Students",
		Description:  "Bags, notebooks, and pencils for children in remote areas for the upcoming school year.",
		GoalAmount:   "15000.00",
		RaisedAmount: "5000.00",
	},
	{
		ID:           "4",
		Category:     CategoryEducation,
		Title:        "Scholarship Fund for Senior High Students",
		Description:  "Tuition and laboratory fees for deserving senior high students in our community.",
		GoalAmount:   "30000.00",
		RaisedAmount: "8500.00",
	},
}

// CampaignCatalog returns a copy of the static campaign list
func CampaignCatalog() []Campaign {
	out := make([]Campaign, len(campaignCatalog))
	copy(out, campaignCatalog)
	return out
}

// ListByCategory filters the static catalog by cause category. The match is
// case-insensitive and "All" (any casing) returns every campaign. An unknown
// category yields an empty slice, not an error.
func ListByCategory(category string) []Campaign {
	if strings.EqualFold(category, CategoryAll) {
		return CampaignCatalog()
	}

	matched := make([]Campaign, 0)
	for _, c := range campaignCatalog {
		if strings.EqualFold(string(c.Category), category) {
			matched = append(matched, c)
		}
	}
	return matched
}
