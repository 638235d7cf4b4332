package pipeline

// Schema describes the structure of a training dataset: which columns feed
// the model and which columns are regression targets.
type Schema struct {
	FeatureNames []string
	TargetNames  []string
}

// Columns returns feature names followed by target names.
func (s Schema) Columns() []string {
	out := make([]string, 0, len(s.FeatureNames)+len(s.TargetNames))
	out = append(out, s.FeatureNames...)
	return append(out, s.TargetNames...)
}
