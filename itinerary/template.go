package itinerary

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyGlyph = "₹"

var budgetPrinter = message.NewPrinter(language.English)

// FormatBudget renders an amount with thousands separators and the currency
// glyph, e.g. 25000 -> "₹25,000".
func FormatBudget(budget int64) string {
	return currencyGlyph + budgetPrinter.Sprintf("%d", budget)
}

const dayTemplate = `
## Day %d

### Morning (8 AM - 12 PM)
- **8:00 AM - Breakfast**: Start your day with a delicious local breakfast at a popular café.
  - *Location*: City Center
  - *Cost*: ₹300

- **9:30 AM - Sightseeing**: Visit the main attractions in the morning when it's less crowded.
  - *Location*: Tourist District
  - *Cost*: ₹500 (entrance fees)

### Afternoon (12 PM - 5 PM)
- **12:30 PM - Lunch**: Enjoy authentic local cuisine at a recommended restaurant.
  - *Location*: Old Town
  - *Cost*: ₹600

- **2:00 PM - Cultural Experience**: Participate in a local workshop or visit museums.
  - *Location*: Cultural Quarter
  - *Cost*: ₹400

### Evening (5 PM - 10 PM)
- **5:30 PM - Sunset Views**: Find a scenic spot to watch the sunset.
  - *Location*: Viewpoint
  - *Cost*: Free

- **7:00 PM - Dinner**: Experience the local nightlife and cuisine.
  - *Location*: Entertainment District
  - *Cost*: ₹800
`

var travelTips = []string{
	"**Local Transportation**: Use public transport to save money and experience local life.",
	"**Weather**: Check the seasonal weather patterns before packing.",
	"**Local Customs**: Respect local traditions and customs.",
	"**Safety**: Keep your belongings secure and be aware of your surroundings.",
	"**Language**: Learn a few basic phrases in the local language.",
}

// Generate builds the template itinerary. The destination is interpolated
// verbatim. Non-positive days produce no day sections.
func Generate(destination string, days int, budget int64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Travel Itinerary\n\n", destination)
	b.WriteString("## Introduction\n")
	fmt.Fprintf(&b, "Welcome to %s, a beautiful destination known for its rich culture, stunning landscapes, and vibrant atmosphere. ", destination)
	fmt.Fprintf(&b, "This %d-day itinerary is designed to give you the perfect balance of popular attractions, local experiences, and relaxation within your budget of %s.\n\n",
		days, FormatBudget(budget))

	for day := 1; day <= days; day++ {
		fmt.Fprintf(&b, dayTemplate, day)
	}

	fmt.Fprintf(&b, "\n\n## Travel Tips for %s\n", destination)
	for i, tip := range travelTips {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
	}
	fmt.Fprintf(&b, "\nEnjoy your trip to %s!", destination)

	return b.String()
}
