package handlers

import "github.com/apexcricket/academy-api/internal/models"

// Static fallbacks for the marketing pages. Served when the database is
// unreachable so the public site never shows a broken section.

var defaultPrograms = []models.Program{
	{
		Name:        "Junior Blasters",
		Description: "Skills and game play for first-time cricketers.",
		AgeMin:      5,
		AgeMax:      8,
		Schedule:    "Saturday mornings",
		Featured:    true,
		Active:      true,
	},
	{
		Name:        "Development Squad",
		Description: "Club-level players building match craft and technique.",
		AgeMin:      9,
		AgeMax:      13,
		Schedule:    "Tuesday and Thursday evenings",
		Active:      true,
	},
	{
		Name:        "Pathway Program",
		Description: "Representative-level coaching for aspiring premier cricketers.",
		AgeMin:      14,
		AgeMax:      18,
		Schedule:    "Weeknights plus Sunday sessions",
		Active:      true,
	},
}

var defaultTestimonials = []models.Testimonial{
	{
		Author: "A local parent",
		Role:   "Parent",
		Quote:  "The coaches know every kid by name. Ours counts down the days to training.",
		Rating: 5,
		Active: true,
	},
}

var defaultSettings = models.SiteSettings{
	SiteName:     "Apex Cricket Academy",
	Tagline:      "Where young cricketers become match winners",
	ContactEmail: "hello@apexcricket.com.au",
	ContactPhone: "+61 3 9000 0000",
}
