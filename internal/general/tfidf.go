package general

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var errEmptyVocabulary = errors.New("empty vocabulary")

// termPattern keeps runs of two or more word characters.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// similarityToFirst vectorizes docs with smoothed TF-IDF and l2-normalized
// rows, and returns the cosine similarity of docs[0] to each later doc.
func similarityToFirst(docs []string) ([]float64, error) {
	vocab := make(map[string]int)
	terms := make([][]string, len(docs))
	for i, d := range docs {
		terms[i] = termPattern.FindAllString(strings.ToLower(d), -1)
		for _, t := range terms[i] {
			if _, ok := vocab[t]; !ok {
				vocab[t] = len(vocab)
			}
		}
	}
	if len(vocab) == 0 {
		return nil, errEmptyVocabulary
	}

	rows, cols := len(docs), len(vocab)
	counts := mat.NewDense(rows, cols, nil)
	df := make([]float64, cols)
	for i, ts := range terms {
		for _, t := range ts {
			j := vocab[t]
			if counts.At(i, j) == 0 {
				df[j]++
			}
			counts.Set(i, j, counts.At(i, j)+1)
		}
	}

	n := float64(rows)
	weights := mat.NewDense(rows, cols, nil)
	weights.Apply(func(_, j int, v float64) float64 {
		return v * (math.Log((1+n)/(1+df[j])) + 1)
	}, counts)

	vectors := make([]*mat.VecDense, rows)
	for i := range rows {
		v := mat.VecDenseCopyOf(weights.RowView(i))
		if norm := mat.Norm(v, 2); norm > 0 {
			v.ScaleVec(1/norm, v)
		}
		vectors[i] = v
	}

	sims := make([]float64, rows-1)
	for i := 1; i < rows; i++ {
		sims[i-1] = mat.Dot(vectors[0], vectors[i])
	}
	return sims, nil
}
