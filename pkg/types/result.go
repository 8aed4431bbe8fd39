package types

// HandleRecord is the handle section of a match result.
// All fields are nullable; MatchedBy and Pattern are set together or not at all.
type HandleRecord struct {
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	SourceText *string `json:"source_text"`
	MatchedBy  *string `json:"_matched_by"`
	Pattern    *string `json:"_pattern"`
}

// KnotRecord is the knot section of a match result.
type KnotRecord struct {
	Brand      *string  `json:"brand"`
	Model      *string  `json:"model"`
	Fiber      *Fiber   `json:"fiber"`
	KnotSizeMM *float64 `json:"knot_size_mm"`
	SourceText *string  `json:"source_text"`
	MatchedBy  *string  `json:"_matched_by"`
	Pattern    *string  `json:"_pattern"`
}

// MatchedSections is the structured payload of a successful match.
// Handle and Knot are always present, even when one side resolved nothing;
// downstream consumers rely on never having to special-case missing sections.
type MatchedSections struct {
	Brand     *string      `json:"brand"`
	Model     *string      `json:"model"`
	Handle    HandleRecord `json:"handle"`
	Knot      KnotRecord   `json:"knot"`
	MatchedBy *string      `json:"_matched_by"`
	Pattern   *string      `json:"_pattern"`
	MatchType *MatchType   `json:"match_type"`
}

// BrushMatchResult is the engine's output for one input string.
// Matched is nil only for fully unmatched input; Original and Normalized
// are always populated.
type BrushMatchResult struct {
	Original   string           `json:"original"`
	Normalized string           `json:"normalized"`
	Matched    *MatchedSections `json:"matched"`
}

// SameMaker reports whether handle and knot carry the same non-empty brand,
// compared case-insensitively.
func (m *MatchedSections) SameMaker() bool {
	if m.Handle.Brand == nil || m.Knot.Brand == nil {
		return false
	}
	return EqualFold(*m.Handle.Brand, *m.Knot.Brand)
}

// Ptr returns a pointer to v. JSON nullable fields are pointers throughout.
func Ptr[T any](v T) *T { return &v }
