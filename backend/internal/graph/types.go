package graph

// The node labels (Game, Genre, Developer, Mechanic, User) and relationship
// types (HAS_GENRE, DEVELOPED_BY, HAS_MECHANIC, LIKES) used in the queries of
// this package are a persisted schema contract; renaming any of them is a
// breaking change for existing databases.

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Game is the catalog entity, returned with its full denormalized
// attribute name sets. SimilarityScore is only set on recommendations.
type Game struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	ReleaseYear     int      `json:"releaseYear"`
	About           string   `json:"about,omitempty"`
	ImagePath       string   `json:"imagePath,omitempty"`
	Genres          []string `json:"genres"`
	Developers      []string `json:"developers"`
	Mechanics       []string `json:"mechanics"`
	SimilarityScore int      `json:"similarityScore,omitempty"`
}

// User represents a user in the graph
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
