package youtube

// searchResponse represents the YouTube search.list response envelope.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

// searchItem is one raw search result.
type searchItem struct {
	ID      itemID  `json:"id"`
	Snippet snippet `json:"snippet"`
}

type itemID struct {
	VideoID string `json:"videoId"`
}

type snippet struct {
	Title      string     `json:"title"`
	Thumbnails thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	High    thumbnail `json:"high"`
	Medium  thumbnail `json:"medium"`
	Default thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}
