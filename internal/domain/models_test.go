package domain

import "testing"

func TestParseBuildingCategory(t *testing.T) {
	cases := []struct {
		in   string
		want BuildingCategory
	}{
		{"hospital", CategoryHospital},
		{"school", CategorySchool},
		{"shopping_mall", CategoryShoppingMall},
		{"office", CategoryOffice},
		{"residential", CategoryResidential},
		{"industrial", CategoryIndustrial},
		{"unknown", CategoryUnknown},
		{"", CategoryResidential},
		{"Hospital", CategoryUnknown},
		{"warehouse", CategoryUnknown},
	}
	for _, c := range cases {
		if got := ParseBuildingCategory(c.in); got != c.want {
			t.Fatalf("ParseBuildingCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
