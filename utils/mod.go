package utils

// FindIndices returns the positions of every element equal to item, in order.
func FindIndices[T comparable](slice []T, item T) []int {
	indices := []int{}
	for i, v := range slice {
		if v == item {
			indices = append(indices, i)
		}
	}
	return indices
}
