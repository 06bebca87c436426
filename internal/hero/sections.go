package hero

// Section is one discrete content block of the hero.
type Section struct {
	ID       string
	Title    string
	Sub1     string
	Sub2     string
	Image    string
	ShowCTA  bool
	Keyframe Vec3
}

// DefaultSections is the fixed three-stop journey from the distant
// stadium view down to pitch level.
func DefaultSections() []Section {
	return []Section{
		{
			ID:       "pitch",
			Title:    "THE PITCH",
			Sub1:     "Where strategy meets performance,",
			Sub2:     "and vision becomes victory.",
			Image:    "/static/images/hero-stadium.svg",
			ShowCTA:  true,
			Keyframe: Vec3{0, 60, 900},
		},
		{
			ID:       "game",
			Title:    "THE GAME",
			Sub1:     "Beyond the scoreline lies the business,",
			Sub2:     "brand, revenue, and relentless innovation.",
			Image:    "/static/images/hero-game.svg",
			Keyframe: Vec3{0, 30, 400},
		},
		{
			ID:       "future",
			Title:    "THE FUTURE",
			Sub1:     "In the space between sport and technology,",
			Sub2:     "we find the next era of the beautiful game.",
			Image:    "/static/images/hero-future.svg",
			Keyframe: Vec3{0, 10, 60},
		},
	}
}

// Keyframes extracts the camera keyframe of every section, in order.
func Keyframes(sections []Section) []Vec3 {
	keys := make([]Vec3, len(sections))
	for i, s := range sections {
		keys[i] = s.Keyframe
	}
	return keys
}

// LookAt is the fixed point the camera always faces.
var LookAt = Vec3{0, 10, -600}
