package shortener

// ShortenRequest is the body posted to the shortening service.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse is the body returned on success. Only ShortURL is required;
// Key and LongURL are echoed by the reference backend and kept for logging.
type ShortenResponse struct {
	Key      string `json:"key,omitempty"`
	ShortURL string `json:"short_url"`
	LongURL  string `json:"long_url,omitempty"`
}
