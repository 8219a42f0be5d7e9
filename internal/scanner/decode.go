package scanner

import "sort"

// DecodeOptions control candidate decoding and suppression.
type DecodeOptions struct {
	ScoreThreshold float32 // drop candidates below this confidence
	IOUThreshold   float32 // boxes overlapping more than this are suppressed
	MaxDetections  int     // cap on surviving boxes per frame
}

// Decode turns one raw model output into per-candidate detections and
// suppresses overlapping boxes, keeping at most MaxDetections of the
// highest-confidence non-overlapping candidates.
//
// Each raw row is [y1, x1, y2, x2, classScore0, classScore1, ...] in model
// input coordinates; the candidate's score is its best class score and its
// class is that score's index.
func Decode(raw [][]float32, opts DecodeOptions) []Detection {
	var candidates []Detection
	for _, row := range raw {
		if len(row) < 5 {
			continue
		}

		score, class := float32(0), 0
		for i, s := range row[4:] {
			if s > score {
				score = s
				class = i
			}
		}
		if score < opts.ScoreThreshold {
			continue
		}

		y1, x1, y2, x2 := row[0], row[1], row[2], row[3]
		candidates = append(candidates, Detection{
			Box:   Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1},
			Score: score,
			Class: class,
		})
	}

	return suppress(candidates, opts)
}

// suppress is a greedy non-max suppression over score-ordered candidates.
func suppress(candidates []Detection, opts DecodeOptions) []Detection {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	var kept []Detection
	for _, c := range candidates {
		if opts.MaxDetections > 0 && len(kept) >= opts.MaxDetections {
			break
		}
		overlaps := false
		for _, k := range kept {
			if iou(c.Box, k.Box) > opts.IOUThreshold {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, c)
		}
	}
	return kept
}
