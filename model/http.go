package model

type VoicingRequestBody struct {
	Chords   []string `json:"chords"`
	Anchor   string   `json:"anchor,omitempty"`
	MaxNotes int      `json:"max_notes,omitempty"`
	OmitRoot bool     `json:"omit_root,omitempty"`
	Render   bool     `json:"render,omitempty"`
}

type VoicedChord struct {
	Symbol string   `json:"symbol"`
	Notes  []string `json:"notes"`
	Midi   []int    `json:"midi"`
}

type VoicingResponse struct {
	Chords []VoicedChord `json:"chords"`

	// id of the rendered midi file under the render dir, when asked for
	RenderId string `json:"render_id,omitempty"`
}

type QualitiesResponse struct {
	Suffixes []string `json:"suffixes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
