package catalog

import "homeserve/models"

var seedServices = []models.Service{
	{
		ID:          "1",
		Name:        "House Cleaning",
		Category:    "Cleaning",
		Price:       499,
		Duration:    "2 hrs",
		Description: "Deep home cleaning service including all rooms and kitchen.",
		Images:      []string{"https://cdn.homeserve.app/services/house-cleaning.png"},
	},
	{
		ID:          "2",
		Name:        "AC Repair",
		Category:    "Appliances",
		Price:       799,
		Duration:    "1.5 hrs",
		Description: "Servicing and minor repairs of your air conditioner.",
		Images:      []string{"https://cdn.homeserve.app/services/ac-repair.png"},
	},
	{
		ID:          "3",
		Name:        "Plumbing",
		Category:    "Maintenance",
		Price:       299,
		Duration:    "1 hr",
		Description: "Fix leaks, taps, pipes and fittings.",
		Images:      []string{"https://cdn.homeserve.app/services/plumbing.png"},
	},
	{
		ID:          "4",
		Name:        "Pest Control",
		Category:    "Cleaning",
		Price:       999,
		Duration:    "3 hrs",
		Description: "Chemical pest control to remove bugs and insects.",
		Images:      []string{"https://cdn.homeserve.app/services/pest-control.png"},
	},
	{
		ID:          "5",
		Name:        "Electrician",
		Category:    "Maintenance",
		Price:       349,
		Duration:    "1.5 hrs",
		Description: "Fix wiring, switchboards, fans, and lighting issues.",
		Images:      []string{"https://cdn.homeserve.app/services/electrician.png"},
	},
	{
		ID:          "6",
		Name:        "Car Wash",
		Category:    "Vehicle",
		Price:       599,
		Duration:    "1 hr",
		Description: "Exterior and interior car cleaning at your doorstep.",
		Images:      []string{"https://cdn.homeserve.app/services/car-wash.png"},
	},
}

var seedSlots = []models.Slot{
	{Date: "2025-06-01", Times: []string{"10:00", "12:00", "14:00"}},
	{Date: "2025-06-02", Times: []string{"09:00", "11:00", "15:00"}},
	{Date: "2025-06-03", Times: []string{"09:00", "11:00", "15:00"}},
	{Date: "2025-06-04", Times: []string{"09:00", "11:00", "15:00"}},
	{Date: "2025-06-05", Times: []string{"09:00", "11:00", "15:00"}},
	{Date: "2025-06-06", Times: []string{"09:00", "11:00", "15:00"}},
	{Date: "2025-06-07", Times: []string{"09:00", "11:00", "15:00"}},
	{Date: "2025-06-08", Times: []string{"09:00", "11:00", "15:00"}},
}
