// Package theater provides the visual-layout configuration domains: the
// theater backdrop, the video sub-rectangle, and the clickable hotspots.
package theater

// Config holds the theater backdrop and the decorative mask composited
// above the video rectangle.
type Config struct {
	BackgroundURL string `json:"backgroundUrl"`
	MaskURL       string `json:"maskUrl"`
}

// VideoPosition is the sub-rectangle of the frame where theater-mode video
// renders, as CSS percentage strings.
type VideoPosition struct {
	Top    string `json:"top"`
	Left   string `json:"left"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// ContentItem is one informational entry revealed by a hotspot modal.
type ContentItem struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ImagePlaceholder string  `json:"imagePlaceholder"`
	LinkURL          string  `json:"linkUrl,omitempty"`
	Scale            float64 `json:"scale,omitempty"`
	PosterWidth      float64 `json:"posterWidth,omitempty"`
	OffsetX          float64 `json:"offsetX,omitempty"`
	OffsetY          float64 `json:"offsetY,omitempty"`
}

// Hotspot is a clickable region of the theater view, positioned in
// percentages of the frame.
type Hotspot struct {
	ID               string        `json:"id"`
	Label            string        `json:"label"`
	Top              float64       `json:"top"`
	Left             float64       `json:"left"`
	Width            float64       `json:"width"`
	Height           float64       `json:"height"`
	Contents         []ContentItem `json:"contents"`
	PosterOverlayURL string        `json:"posterOverlayUrl,omitempty"`
}

// HotspotConfig is the full hotspot layout for the theater view.
type HotspotConfig struct {
	HotspotIconURL            string    `json:"hotspotIconUrl"`
	MerchandiseHotspotIconURL string    `json:"merchandiseHotspotIconUrl,omitempty"`
	Hotspots                  []Hotspot `json:"hotspots"`
	MerchandiseHotspots       []Hotspot `json:"merchandiseHotspots"`
}

const imageBase = "https://storage.googleapis.com/hoosierillusionsimages/"

// DefaultConfig returns the shipped theater backdrop.
func DefaultConfig() Config {
	return Config{
		BackgroundURL: imageBase + "front.png",
		MaskURL:       imageBase + "front-transparent.png",
	}
}

// DefaultVideoPosition returns the shipped video sub-rectangle.
func DefaultVideoPosition() VideoPosition {
	return VideoPosition{Top: "35%", Left: "27%", Width: "40%", Height: "25%"}
}

// DefaultHotspotConfig returns the shipped hotspot layout.
func DefaultHotspotConfig() HotspotConfig {
	return HotspotConfig{
		HotspotIconURL:            imageBase + "OwlWhiteTransparent.png",
		MerchandiseHotspotIconURL: imageBase + "OwlBlackTransparent.png",
		MerchandiseHotspots:       []Hotspot{},
		Hotspots: []Hotspot{
			{
				ID:               "posters-left",
				Label:            "Album Posters",
				Top:              15, Left: 5, Width: 10, Height: 15,
				PosterOverlayURL: imageBase + "Generated%20Image%20November%2021%2C%202025%20-%206_15AM.png",
				Contents: []ContentItem{
					{
						Title:            "Hoosier Holidays",
						Description:      "A festive collection of holiday classics and seasonal favorites from Hoosier Illusions Studio.",
						ImagePlaceholder: imageBase + "Generated%20Image%20November%2021%2C%202025%20-%206_18AM.png",
						Scale:            0.5,
						PosterWidth:      100,
					},
					{
						Title:            "Deadspeak",
						Description:      "Mysterious transmissions from beyond the veil. A haunting audio experience.",
						ImagePlaceholder: imageBase + "OwlWhiteTransparent.png",
						Scale:            0.5,
						PosterWidth:      100,
					},
					{
						Title:            "The Illusionists Gambit",
						Description:      "A theatrical journey through magic, mystery, and musical mastery.",
						ImagePlaceholder: imageBase + "OwlWhiteTransparent.png",
						Scale:            0.5,
						PosterWidth:      100,
					},
					{
						Title:            "Fauna the Musical",
						Description:      "An enchanting musical journey through the natural world.",
						ImagePlaceholder: imageBase + "OwlWhiteTransparent.png",
						Scale:            0.5,
						PosterWidth:      100,
					},
				},
			},
			{
				ID:    "bookshelf-left",
				Label: "Arcane Library",
				Top:   45, Left: 2, Width: 12, Height: 30,
				Contents: []ContentItem{
					{
						Title:            "Forbidden Grimoires",
						Description:      "A collection of spellbooks and tomery that predate the theatre itself. The books are bound in leather that feels suspiciously warm to the touch.",
						ImagePlaceholder: "Mystic Bookshelf",
					},
					{
						Title:            "The Diary of The Founder",
						Description:      "Handwritten notes detailing the construction of the theatre. Several pages are stuck together with what looks like ectoplasm.",
						ImagePlaceholder: "Old Diary",
					},
				},
			},
			{
				ID:    "doors-right",
				Label: "Stage Door",
				Top:   42, Left: 76, Width: 10, Height: 22,
				Contents: []ContentItem{
					{
						Title:            "The Portal",
						Description:      "These double doors lead backstage to the dressing rooms of the mythical. Dare you enter and challenge the spirits?",
						ImagePlaceholder: "Ornate Double Doors",
					},
					{
						Title:            "The Green Room",
						Description:      "A lounge area where spirits relax between hauntings. The coffee is always fresh, but the cups float away if you are not careful.",
						ImagePlaceholder: "Floating Teacup",
					},
					{
						Title:            "The Prop Loft",
						Description:      "Shelves filled with wands that misfire, hats with bottomless pits, and decks of cards that shuffle themselves.",
						ImagePlaceholder: "Magical Clutter",
					},
				},
			},
		},
	}
}
