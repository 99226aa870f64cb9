package sound

import "math"

// SmoothingFactor weighs the previous frame when folding new levels in.
const SmoothingFactor = 0.6

// Bands folds samples into n RMS levels compressed for display and eased
// against prev. prev is reused when it already has n entries.
func Bands(samples [][2]float64, prev []float64, n int, smoothing float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := prev
	if len(out) != n {
		out = make([]float64, n)
	}
	if len(samples) == 0 {
		return out
	}

	segmentSize := int(math.Max(1, float64(len(samples))/float64(n)))
	for i := 0; i < n; i++ {
		start := i * segmentSize
		end := start + segmentSize
		if start >= len(samples) {
			break
		}
		if end > len(samples) {
			end = len(samples)
		}

		var sumSquares float64
		for s := start; s < end; s++ {
			mono := (samples[s][0] + samples[s][1]) * 0.5
			sumSquares += mono * mono
		}

		rms := math.Sqrt(sumSquares / float64(end-start))
		mag := math.Pow(rms, 0.3)
		out[i] = smoothing*out[i] + (1-smoothing)*mag
	}
	return out
}
