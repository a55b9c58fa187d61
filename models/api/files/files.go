package filesapimodels

type UploadView struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type RemoveRequest struct {
	Keys []string `json:"keys"`
}
