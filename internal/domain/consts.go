package domain

// RotationLength is the number of slots in every daily rotation table.
const RotationLength = 15

// LastDayBeforeLeapDay is the zero-based day of year of February 28.
// Later days in non leap years are shifted by one so that every year
// follows the leap year calendar.
const LastDayBeforeLeapDay = 58

// DefaultCMFractals are the fractals that have a challenge mote variant
var DefaultCMFractals = []string{"kinfall", "nightmare", "sunqua_peak", "silent_surf", "lonely_tower"}

// DefaultAnnoyingFractals are the fractals nobody wants to see in the daily list
var DefaultAnnoyingFractals = []string{"aquatic_ruins", "sirens_reef", "deepstone", "twilight_oasis"}

// DefaultNamedEffect is the instability called out in the announcement
const DefaultNamedEffect = "No Pain, No Gain"

// DefaultWebhookUsername is the name shown on posted messages
const DefaultWebhookUsername = "Fractal Bot"

// DefaultJokeAPIURL is the dad joke API, which returns JSON when asked to
const DefaultJokeAPIURL = "https://icanhazdadjoke.com"
