package deck

const (
	// OutputFileName is the file the default build writes into the working directory.
	OutputFileName = "AgriSense_Presentation.pptx"
	// ContactURL closes the final slide.
	ContactURL = "https://github.com/8925331076surendhar/agrisense"
	// Title is the deck title, also used for the document properties.
	Title = "AgriSense"
	// Team presents the deck.
	Team = "Team Nerula"
)

// AgriSense returns the fixed ten-slide AgriSense pitch deck.
func AgriSense() *Deck {
	return New().MustAppend(
		NewTitleSlide(Title, "Smart Agriculture Monitoring & Disease Detection\n"+Team),
		NewBulletSlide("The Problem",
			"Delayed Disease Detection: Farmers often notice issues too late.",
			"Manual Inspection: Checking large fields is labor-intensive.",
			"Crop Loss: Significant yield reduction due to untreated pests.",
		),
		NewBulletSlide("Existing Solutions & Gaps",
			"Current Methods: Manual spotting or lab tests (slow/expensive).",
			"Gap: Lack of real-time, on-field instant analysis.",
			"Barrier: Complex apps that local farmers cannot use easily.",
		),
		NewBulletSlide("Our Solution: AgriSense",
			"AI-Powered Dashboard integrating Drone Feeds.",
			"Instant Disease Detection using Gemini Pro AI.",
			"Simple visual indicators (Red/Green) for farmers.",
			"Works offline and supports local languages.",
		),
		NewBulletSlide("How It Works",
			"1. Drone/Camera captures crop image.",
			"2. System analyzes image using local algorithms.",
			"3. Gemini AI validates and identifies specific disease.",
			"4. Actionable solution provided to the farmer instantly.",
		),
		NewBulletSlide("Technology Stack",
			"Frontend: HTML5, CSS3, JavaScript",
			"AI Engine: Google Gemini Pro API",
			"Mapping: Leaflet JS",
			"Hosting: GitHub Pages",
		),
		NewBulletSlide("Key Features",
			"Live Drone Feed Simulation",
			"Voice Assistant Integration",
			"Multi-language Support (Tamil, Hindi, etc.)",
			"Satellite Disease Mapping",
		),
		NewBulletSlide("Use Case Scenario",
			"Farmer gets an alert for Sector A1.",
			"Opens app, sees red warning zone.",
			"Clicks to analyze: 'Leaf Blast' detected.",
			"App suggests immediate fungicide spray.",
			"Crop saved before spreading.",
		),
		NewBulletSlide("Impact & Future",
			"Impact: 30% reduction in crop loss.",
			"Future: Integration with IoT soil sensors.",
			"Future: Blockchain for organic certification.",
		),
		NewBulletSlide("Thank You",
			Team,
			"Surendhar - Full Stack Lead",
			"Contact: "+ContactURL,
		),
	)
}
