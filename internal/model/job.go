package model

// JobState is the local lifecycle state of one provider-side render.
type JobState string

const (
	JobSubmitted  JobState = "submitted"
	JobProcessing JobState = "processing"
	JobCompleted  JobState = "completed"
	JobFailed     JobState = "failed"
)

// Terminal reports whether the state can never change again.
func (s JobState) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// JobError carries the provider's failure detail for a failed render.
type JobError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// JobStatus is the interpreted result of one status query. VideoURL is only
// set in the completed state, Error only in the failed state.
type JobStatus struct {
	VideoID      string    `json:"video_id"`
	State        JobState  `json:"state"`
	VideoURL     string    `json:"video_url,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	GIFURL       string    `json:"gif_url,omitempty"`
	Duration     float64   `json:"duration,omitempty"`
	CreatedAt    int64     `json:"created_at,omitempty"`
	Error        *JobError `json:"error,omitempty"`
}
