package media

// Shipped asset locations.
const (
	// DefaultVideoURL is the idle splash video shown before the first
	// explicit play action.
	DefaultVideoURL = "https://storage.googleapis.com/hoosierillusionsvideos/WelcomeToHoosierIllusions.mp4"

	// DefaultLogoURL is the fallback art asset used when neither an explicit
	// image nor album art is available.
	DefaultLogoURL = "https://storage.googleapis.com/hoosierillusionsimages/OwlWhiteTransparent.png"

	// LiveStreamURL is the continuous live-radio endpoint.
	LiveStreamURL = "https://stream.hoosierillusions.com/listen/hoosier-illusions/radio.mp3"
)

const (
	videoBase = "https://storage.googleapis.com/hoosierillusionsvideos/"
	audioBase = "https://storage.googleapis.com/hoosierillusionsaudio/"
)

// DefaultCatalog returns the built-in trigger mappings shipped with the
// kiosk. The result is a fresh copy each call so merge layers can overlay
// it freely.
func DefaultCatalog() Catalog {
	radioTrack := func(video string) Mapping {
		return Mapping{
			VideoURL:       video,
			AudioURL:       LiveStreamURL,
			ShowInDropdown: true,
			MuteVideo:      true,
		}
	}
	onDemand := func(audio string) Mapping {
		return Mapping{
			AudioURL:       audioBase + audio,
			ShowInDropdown: true,
			MuteVideo:      true,
		}
	}

	return Catalog{
		"moonlight in her eyes": {
			VideoURL:  videoBase + "MoonlightInHerEyes.mp4",
			AudioURL:  audioBase + "Moonlight%20In%20Her%20Eyes.mp3",
			MuteVideo: true,
		},
		"great southern shuffle": {
			VideoURL: videoBase + "GreatSouthernShuffle.mp4",
			AudioURL: audioBase + "Great%20Southern%20Shuffle.mp3",
		},
		"hoosier haze":      radioTrack(videoBase + "Cocoon.mp4"),
		"hoosier illusions": radioTrack(videoBase + "Neon%20Hijack.mp4"),
		"deadspeak":         radioTrack(videoBase + "Radio%20Illusions%20%231.mp4"),
		"hoosier holidays":  radioTrack(""),

		"candy cane lane":                   onDemand("Candy%20Cane%20Lane.mp3"),
		"christmas lights and jingle bells": onDemand("Christmas%20Lights%20And%20Jingle%20Bells.mp3"),
		"cocoa kisses":                      onDemand("Cocoa%20Kisses.mp3"),
		"the last christmas tree":           onDemand("The%20Last%20Christmas%20Tree.mp3"),
		"cole porter":                       onDemand("Cole%20Porter.mp3"),
		"dan toler":                         onDemand("Dan%20Toler.mp3"),
		"dreamers road":                     onDemand("Dreamers%20Road.mp3"),
		"hoagy carmichael":                  onDemand("Hoagy%20Carmichael.mp3"),
		"hollywood's roar":                  onDemand("Hollywood%27s%20Roar.mp3"),
		"in the haze of the night":          onDemand("In%20The%20Haze%20Of%20The%20Night.mp3"),
		"james dean":                        onDemand("James%20Dean.mp3"),
		"kurt vonnegut jr.":                 onDemand("Kurt%20Vonnegut%20Jr..mp3"),
		"midnight check-in":                 onDemand("Midnight%20Check-In.mp3"),
		"southern road blues":               onDemand("Southern%20Road%20Blues.mp3"),
		"tralfamadore blues":                onDemand("Tralfamadore%20Blues.mp3"),
		"wes montgomery":                    onDemand("Wes%20Montgomery.mp3"),
		"zoo promo":                         onDemand("Zoo%20Promo.mp3"),
	}
}
