package engine

// crossValidationFoldCount is the fixed fold count of the cosmetic
// validation summary.
const crossValidationFoldCount = 5

// crossValidationFolds emits the five fixed-shape fold records. The
// values jitter around fixed centers from the shared seed; they are not
// derived from the simulation beyond that.
func crossValidationFolds(src *Source) []CrossValidationFold {
	out := make([]CrossValidationFold, 0, crossValidationFoldCount)
	for i := 1; i <= crossValidationFoldCount; i++ {
		out = append(out, CrossValidationFold{
			Fold: i,
			RMSE: round2(12 + src.Float64()*8),
			R2:   round4(0.88 + src.Float64()*0.09),
			MAE:  round2(8 + src.Float64()*5),
		})
	}
	return out
}

// modelMetrics emits the cosmetic model-quality summary.
func modelMetrics(src *Source) ModelMetrics {
	return ModelMetrics{
		Accuracy:  round4(0.89 + src.Float64()*0.08),
		F1:        round4(0.87 + src.Float64()*0.09),
		Precision: round4(0.87 + src.Float64()*0.10),
		Recall:    round4(0.86 + src.Float64()*0.10),
		AUC:       round4(0.90 + src.Float64()*0.08),
	}
}
