package constants

const (
	DefaultManifestationQuote = "Small steps are still steps. Start when you're ready."
	DefaultSharedWhy          = "We started this journey because we refused to settle for ordinary. " +
		"We believe that creativity is our superpower and discipline is our weapon. " +
		"We build this together, support each other, and grow 1% every single day."

	DefaultTheme        = "sunrise"
	DefaultSoundEnabled = true
	DefaultMusicEnabled = true
	DefaultTimezone     = "Local"
)
