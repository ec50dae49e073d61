package services

// ProjectWeight fits a least-squares line over the dense series (day index
// against weight) and evaluates it for the next days entries. It returns nil
// below the advice threshold: a short history produces a line not worth
// showing.
func ProjectWeight(dense []DensePoint, days int) []DensePoint {
	if len(dense) < MinAdviceDays || days <= 0 {
		return nil
	}

	n := float64(len(dense))
	var sumX, sumY, sumXY, sumXX float64
	for index, point := range dense {
		x := float64(index)
		sumX += x
		sumY += point.WeightKg
		sumXY += x * point.WeightKg
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return nil
	}
	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	last := dense[len(dense)-1]
	projected := make([]DensePoint, 0, days)
	for offset := 1; offset <= days; offset++ {
		x := float64(len(dense) - 1 + offset)
		projected = append(projected, DensePoint{
			Date:     last.Date.AddDate(0, 0, offset),
			WeightKg: intercept + slope*x,
		})
	}
	return projected
}
