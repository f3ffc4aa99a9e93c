package content

// Compiled-in baseline content. Every fresh install shows exactly this until
// the owner edits and saves; edits replace a whole domain at a time.

// DefaultSite returns the baseline site info.
func DefaultSite() SiteInfo {
	return SiteInfo{
		Name:  "Ella Wright",
		Email: "hello@ellawright.art",
		Instagram: Instagram{
			Handle: "ellawrightart",
			URL:    "https://instagram.com/ellawrightart",
		},
		Metadata: Metadata{
			Title:       "Ella Wright | Fine Art",
			Description: "Contemporary fine art by Ella Wright.",
		},
	}
}

// DefaultArtworks returns the baseline gallery, in display order.
func DefaultArtworks() []Artwork {
	return []Artwork{
		{
			ID:         "1",
			Title:      "Veil",
			Year:       "2024",
			Medium:     "Oil on linen",
			Dimensions: "48 × 60 in",
			ImageURL:   "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=1200",
		},
		{
			ID:         "2",
			Title:      "Threshold",
			Year:       "2024",
			Medium:     "Oil and cold wax on panel",
			Dimensions: "24 × 24 in",
			ImageURL:   "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=1200",
		},
		{
			ID:         "3",
			Title:      "Drift",
			Year:       "2023",
			Medium:     "Acrylic and charcoal on canvas",
			Dimensions: "36 × 48 in",
			ImageURL:   "https://images.unsplash.com/photo-1515405295579-ba7b45403062?w=1200",
		},
		{
			ID:         "4",
			Title:      "Quiet Hour",
			Year:       "2023",
			Medium:     "Oil on canvas",
			Dimensions: "30 × 40 in",
			ImageURL:   "https://images.unsplash.com/photo-1549887534-1541e9326642?w=1200",
		},
		{
			ID:         "5",
			Title:      "Echo",
			Year:       "2023",
			Medium:     "Mixed media on paper",
			Dimensions: "22 × 30 in",
			ImageURL:   "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=1200",
		},
		{
			ID:         "6",
			Title:      "Held",
			Year:       "2022",
			Medium:     "Oil on linen",
			Dimensions: "20 × 20 in",
			ImageURL:   "https://images.unsplash.com/photo-1578301978693-85fa9c0320b9?w=1200",
		},
	}
}

// DefaultAbout returns the baseline about page.
func DefaultAbout() AboutContent {
	return AboutContent{
		PortraitURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=800",
		BioParagraphs: []string{
			"Ella Wright is a contemporary painter based in New York. Her work explores the boundaries between representation and abstraction through layered surfaces and a restrained palette.",
			"She has exhibited nationally and internationally and has been the recipient of residencies at MacDowell, Yaddo, and Vermont Studio Center. Her work is held in private collections across the United States and Europe.",
		},
		StatementParagraphs: []string{
			"I am interested in the way light falls on a surface and how time leaves a trace. My paintings begin from observation and drift toward memory—building and scraping back, leaving edges that hesitate between presence and absence.",
			"The work does not illustrate a story so much as hold space for quiet attention. I want the viewer to slow down and meet the surface with the same patience it asked of me in the making.",
		},
		CVSections: []CVSection{
			{
				Title: "Education",
				Items: []string{
					"MFA Painting, Rhode Island School of Design, Providence, RI — 2019",
					"BFA Studio Art, School of the Art Institute of Chicago, Chicago, IL — 2015",
				},
			},
			{
				Title: "Exhibitions",
				Items: []string{
					"Solo Show, Galerie du Monde, New York, NY — 2024",
					"Group Show: Material Witness, The Drawing Center, New York, NY — 2023",
					"Two-Person Show, Reyes | Finn, Detroit, MI — 2022",
					"Group Show: Surface Tension, ICA Boston, Boston, MA — 2021",
				},
			},
			{
				Title: "Residencies",
				Items: []string{
					"MacDowell, Peterborough, NH — 2023",
					"Yaddo, Saratoga Springs, NY — 2022",
					"Vermont Studio Center, Johnson, VT — 2021",
				},
			},
		},
	}
}
