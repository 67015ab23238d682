// Package cluster groups token streams that describe the same incident.
// Similarity is TF-IDF cosine over a per-batch vocabulary; two items are
// linked when their similarity clears the threshold and their timestamps
// fall within the window, and groups are the connected components of
// that link graph
package cluster

import "math"

// vector is a sparse L2-normalized TF-IDF vector keyed by vocabulary index
type vector map[int]float64

// vectorize builds the batch vocabulary and one normalized vector per
// document. The vocabulary is local to the batch, so IDF weights reflect
// how discriminative a token is within this batch only.
// IDF uses the smoothed form ln((1+n)/(1+df))+1 so no weight is ever zero
func vectorize(docs [][]string) []vector {
	n := len(docs)
	if n == 0 {
		return nil
	}

	vocab := make(map[string]int, 64)
	df := make([]int, 0, 64)

	counts := make([]map[int]int, n)
	for i, toks := range docs {
		tf := make(map[int]int, len(toks))
		for _, tok := range toks {
			id, ok := vocab[tok]
			if !ok {
				id = len(df)
				vocab[tok] = id
				df = append(df, 0)
			}
			tf[id]++
		}
		for id := range tf {
			df[id]++
		}
		counts[i] = tf
	}

	idf := make([]float64, len(df))
	for id, d := range df {
		idf[id] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	out := make([]vector, n)
	for i, tf := range counts {
		v := make(vector, len(tf))
		var norm float64
		for id, c := range tf {
			w := float64(c) * idf[id]
			v[id] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for id := range v {
				v[id] /= norm
			}
		}
		out[i] = v
	}
	return out
}

// cosine is the dot product of two normalized vectors.
// Iterates the smaller map
func cosine(a, b vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for id, wa := range a {
		if wb, ok := b[id]; ok {
			dot += wa * wb
		}
	}
	return dot
}
