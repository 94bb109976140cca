// Package pack places axis-aligned rectangles on a power-of-two canvas.
//
// MaxRects keeps the list of maximal free rectangles of a fixed canvas and
// places each new rectangle with the best long side fit heuristic: the free
// rectangle whose larger leftover dimension is smallest wins, with the
// smaller leftover dimension breaking ties.
//
// PackAll packs a whole set, restarting from an empty canvas with the
// shorter side doubled whenever any rectangle fails to fit:
//
//	res, err := pack.PackAll(sizes, pack.NextPow2(64))
//	if err != nil {
//		return err
//	}
//	for i, r := range res.Rects {
//		// sizes[i] is placed at r on a res.Width x res.Height canvas.
//	}
package pack
