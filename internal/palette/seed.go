package palette

// Canonical scale names.
const (
	Blue   = "Blue"
	Red    = "Red"
	Green  = "Green"
	Yellow = "Yellow"
	Grey   = "Grey"
)

var seed = Palette{
	{
		Name: Blue,
		Grades: []Entry{
			{Color: "#ffffff", Grade: 0},
			{Color: "#ecf3fe", Grade: 5},
			{Color: "#d3e3fd", Grade: 10},
			{Color: "#a8c7fa", Grade: 20},
			{Color: "#7cacf8", Grade: 30},
			{Color: "#4c8df6", Grade: 40},
			{Color: "#1b6ef3", Grade: 50},
			{Color: "#0b57d0", Grade: 60},
			{Color: "#0842a0", Grade: 70},
			{Color: "#062e6f", Grade: 80},
			{Color: "#041e49", Grade: 90},
			{Color: "#000000", Grade: 100},
		},
	},
	{
		Name: Red,
		Grades: []Entry{
			{Color: "#ffffff", Grade: 0},
			{Color: "#fceeee", Grade: 5},
			{Color: "#f9dedc", Grade: 10},
			{Color: "#f2b8b5", Grade: 20},
			{Color: "#ec928e", Grade: 30},
			{Color: "#e46962", Grade: 40},
			{Color: "#dc362e", Grade: 50},
			{Color: "#b3261e", Grade: 60},
			{Color: "#8c1d18", Grade: 70},
			{Color: "#601410", Grade: 80},
			{Color: "#410e0b", Grade: 90},
			{Color: "#000000", Grade: 100},
		},
	},
	{
		Name: Green,
		Grades: []Entry{
			{Color: "#ffffff", Grade: 0},
			{Color: "#ddf9e5", Grade: 5},
			{Color: "#b6f2c8", Grade: 10},
			{Color: "#57e080", Grade: 20},
			{Color: "#24c655", Grade: 30},
			{Color: "#1ea446", Grade: 40},
			{Color: "#198639", Grade: 50},
			{Color: "#146c2e", Grade: 60},
			{Color: "#0f5223", Grade: 70},
			{Color: "#0a3818", Grade: 80},
			{Color: "#06220f", Grade: 90},
			{Color: "#000000", Grade: 100},
		},
	},
	{
		Name: Yellow,
		Grades: []Entry{
			{Color: "#ffffff", Grade: 0},
			{Color: "#fff0d1", Grade: 5},
			{Color: "#ffdf99", Grade: 10},
			{Color: "#ffbb29", Grade: 20},
			{Color: "#e69d00", Grade: 30},
			{Color: "#c28400", Grade: 40},
			{Color: "#9e6c00", Grade: 50},
			{Color: "#805700", Grade: 60},
			{Color: "#614200", Grade: 70},
			{Color: "#422d00", Grade: 80},
			{Color: "#291c00", Grade: 90},
			{Color: "#000000", Grade: 100},
		},
	},
	{
		Name: Grey,
		Grades: []Entry{
			{Color: "#ffffff", Grade: 0},
			{Color: "#f2f2f2", Grade: 5},
			{Color: "#e3e3e3", Grade: 10},
			{Color: "#c7c7c7", Grade: 20},
			{Color: "#ababab", Grade: 30},
			{Color: "#8f8f8f", Grade: 40},
			{Color: "#757575", Grade: 50},
			{Color: "#5e5e5e", Grade: 60},
			{Color: "#474747", Grade: 70},
			{Color: "#303030", Grade: 80},
			{Color: "#1f1f1f", Grade: 90},
			{Color: "#000000", Grade: 100},
		},
	},
}

// Seed returns a fresh copy of the built-in palette.
func Seed() Palette {
	return seed.Clone()
}

// SeedScale returns a copy of the built-in scale with the given name.
func SeedScale(name string) (Scale, bool) {
	s, ok := seed.Scale(name)
	if !ok {
		return Scale{}, false
	}
	return s.Clone(), true
}
