package util

// CalculateAverage returns sum(values) / len(values), or 0 for no values.
// The sum is accumulated as float64 so large values can not wrap.
func CalculateAverage(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

func Sum(values []int) int {
	var sum int
	for _, v := range values {
		sum += v
	}
	return sum
}
