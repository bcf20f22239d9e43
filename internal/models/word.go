package models

// WordPair is a secret word and the hint shown to impostors instead of it
type WordPair struct {
	Word         string `json:"word"`
	ImposterHint string `json:"imposter_hint"`
}
