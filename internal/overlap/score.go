package overlap

import "fjacquet/find-overlap/internal/models"

// Score returns the Jaccard similarity of a and b as a percentage in
// [0, 100]. Two empty sets score 0.
func Score(a, b models.TransactionSet) float64 {
	union := a.UnionSize(b)
	if union == 0 {
		return 0.0
	}
	return float64(a.IntersectionSize(b)) / float64(union) * 100
}
