package pcm

// Common sample rates.
const (
	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony uint32 = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP uint32 = 16000

	// RateSpeech is the speech recognition common sample rate.
	RateSpeech uint32 = 22050

	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD uint32 = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT uint32 = 48000

	// RateHiRes88 is the high-resolution 2x CD sample rate.
	RateHiRes88 uint32 = 88200

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 uint32 = 96000

	// RateHiRes176 is the very high resolution 4x CD sample rate.
	RateHiRes176 uint32 = 176400

	// RateHiRes192 is the very high resolution 4x DAT sample rate.
	RateHiRes192 uint32 = 192000
)
