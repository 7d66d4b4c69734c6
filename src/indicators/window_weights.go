package indicators

// TriangularWeights matches scipy.signal.windows.triang: the weights never reach zero at the edges.
func TriangularWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}

	half := (n + 1) / 2
	w := make([]float64, 0, n)
	for i := 1; i <= half; i++ {
		if n%2 == 1 {
			w = append(w, 2*float64(i)/float64(n+1))
		} else {
			w = append(w, (2*float64(i)-1)/float64(n))
		}
	}

	mirror := half - 1
	if n%2 == 0 {
		mirror = half
	}

	for i := mirror - 1; i >= 0; i-- {
		w = append(w, w[i])
	}

	return w
}

func UniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}
