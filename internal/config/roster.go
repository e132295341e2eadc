package config

var defaultSegments = []string{
	"Brent Almond", "Carly Atkisson", "Ryan Baker", "Tom Bazemore",
	"Jimmy Brady", "Mary Beth Brown", "Bart Cannon", "Phil Collins",
	"Jacob Denney", "Brian Donald", "Maggie Donlon", "Jennifer Egbe",
	"Bob Girardeau", "John Herndon", "Paul Malek", "Logan Manthey",
	"Owen Mattox", "Stewart McCloud", "Elizabeth McCoy", "Chloe McGuire",
	"Woods Parker", "Caitlin Rittenhouse", "Greg Schuck", "Jennifer Segers",
	"Jim Shaw", "John Isaac Southerland", "Gordon Sproule", "Lorel Stano",
	"Allen Sydnor", "Alan Thomas", "Will Thompson", "Morgan Turner",
	"Lillian Yeager", "Jan Humphries", "Mary Kay Hill", "Darlene Garrison",
	"Jane Wilkinson", "Michele Brantley", "Pam Reynolds", "Kelly NIelsen",
	"Kathy Findley", "Mindy Gandy", "Christina Clements", "Artley Young",
	"Maddie Bryan", "Austin McDowell", "McKenzie Ludvik", "Madeline Freeman",
	"Alyson Burroughs", "Gracie Greer", "Cat Tumlin", "Takera Davis",
	"Kelsey Martin", "Teresa Burton", "Amorice Law", "Kara Lamar",
	"Allison Riihimaa", "Kristina Kelley", "Conni Barber / Michele Brantley / Angela",
	"Ashaunte Bailey", "Sara Edelman",
}

// DefaultSegments returns the built-in roster used when no list is configured.
func DefaultSegments() []string {
	out := make([]string, len(defaultSegments))
	copy(out, defaultSegments)
	return out
}
