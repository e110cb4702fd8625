package content

import (
	"math"
)

// Entropy computes the Shannon entropy, in bits, of the character
// distribution of s. Natural-language prose sits well below garbled or
// boilerplate-heavy extraction output, which makes entropy a cheap gate for
// "did extraction actually find an article".
func Entropy(s string) float64 {
	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	if total == 0 {
		return 0
	}

	var h float64
	for _, n := range counts {
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}
