package core

// RuntimeConfig contains configuration passed from the CLI to the platform.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic play (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Ranking tells the platform how to order recorded scores.
type Ranking int

const (
	// RankHighest means a larger score is better (merge puzzle points).
	RankHighest Ranking = iota
	// RankLowest means a smaller score is better (sliding puzzle move count).
	RankLowest
)

// Better reports whether score a beats score b under this ranking.
func (r Ranking) Better(a, b int) bool {
	if r == RankLowest {
		return a < b
	}
	return a > b
}

// String returns the ranking name used in log fields.
func (r Ranking) String() string {
	if r == RankLowest {
		return "lowest"
	}
	return "highest"
}
