package engine

import "math/rand"

// Source is the uniform random generator behind every symbol draw and booster
// pick. *rand.Rand satisfies it; tests supply scripted sequences.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded math/rand generator.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// randomSymbol draws a uniformly distributed palette symbol.
func randomSymbol(src Source) Symbol {
	return Symbol(src.Intn(int(SymbolCount)))
}

// randomTile draws a plain tile with a random symbol.
func randomTile(src Source) Cell {
	return Tile(randomSymbol(src))
}

// pickDistinct returns k distinct values from [0, n) using a partial
// Fisher-Yates shuffle. Returns all n values when k >= n.
func pickDistinct(src Source, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
