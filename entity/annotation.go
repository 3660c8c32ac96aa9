package entity

type Translation struct {
	Original       string
	Translated     string
	SourceLanguage string
	TargetLanguage string
	Mock           bool
	Note           string
}

type Meaning struct {
	Title  string
	Artist string
	Text   string
	Mock   bool
	Note   string
}

type Recommendation struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Reason string `json:"reason"`
	Year   string `json:"year"`
}

type Recommendations struct {
	Title  string
	Artist string
	Items  []Recommendation
	Mock   bool
	Note   string
}
