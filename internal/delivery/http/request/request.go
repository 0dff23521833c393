package request

// DefaultCrawlURL is crawled when the request names no URL.
const DefaultCrawlURL = "https://www.moneycontrol.com/"

type SaveCredentialRequest struct {
	Token string `json:"token"`
}

type TestCredentialRequest struct {
	Token string `json:"token"`
}

type CrawlRequest struct {
	URL string `json:"url"`
}
