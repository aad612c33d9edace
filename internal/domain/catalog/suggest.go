package catalog

import "strings"

// closest devuelve el candidato más parecido a input (distancia de edición ≤ 3 y no mayor que
// la mitad de la longitud de input), o "" si ninguno está suficientemente cerca.
func closest(input string, candidates []string) string {
	in := strings.ToLower(input)
	best := ""
	bestDist := 4
	for _, c := range candidates {
		d := levenshtein(in, strings.ToLower(c))
		if d < bestDist && 2*d <= len(in) {
			bestDist = d
			best = c
		}
	}
	return best
}

// levenshtein calcula la distancia de edición entre dos cadenas (bytes).
func levenshtein(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
