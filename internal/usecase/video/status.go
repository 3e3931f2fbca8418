package video

import "github.com/mleroux/videogen-ms-go/internal/model"

// TranslateStatus is the single point where the provider's status vocabulary
// becomes a local job state. The provider owns its spellings: anything we do
// not recognise as terminal is treated as still running.
func TranslateStatus(raw string) model.JobState {
	switch raw {
	case "waiting", "pending":
		return model.JobSubmitted
	case "processing":
		return model.JobProcessing
	case "completed":
		return model.JobCompleted
	case "failed", "error":
		return model.JobFailed
	default:
		return model.JobProcessing
	}
}

// jobStatusFromProvider builds the caller-facing status from a raw provider
// response.
func jobStatusFromProvider(videoID string, raw *model.VideoStatusData) *model.JobStatus {
	st := &model.JobStatus{
		VideoID:   videoID,
		State:     TranslateStatus(raw.Status),
		CreatedAt: raw.CreatedAt,
	}
	switch st.State {
	case model.JobCompleted:
		st.VideoURL = raw.VideoURL
		st.ThumbnailURL = raw.ThumbnailURL
		st.GIFURL = raw.GIFURL
		st.Duration = raw.Duration
	case model.JobFailed:
		st.Error = raw.Error
	}
	return st
}
