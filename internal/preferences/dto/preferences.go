package dto

type PreferencesResponse struct {
	Aggressiveness   string   `json:"aggressiveness"`
	ProtectedSenders []string `json:"protectedSenders"`
	NotifyOnComplete bool     `json:"notifyOnComplete"`
}

// UpdatePreferencesRequest is a partial write. Pointer fields distinguish
// "omitted" from zero values; a non-list protectedSenders fails binding.
type UpdatePreferencesRequest struct {
	Aggressiveness   *string   `json:"aggressiveness"`
	ProtectedSenders *[]string `json:"protectedSenders"`
	NotifyOnComplete *bool     `json:"notifyOnComplete"`
}
