package model

// Workspace resources: uploaded assets and folders.

type Asset struct {
	AssetID   string  `json:"asset_id"`
	AssetKey  string  `json:"asset_key,omitempty"`
	URL       string  `json:"url,omitempty"`
	Type      string  `json:"type,omitempty"`
	FileName  string  `json:"file_name,omitempty"`
	FileType  string  `json:"file_type,omitempty"`
	SizeBytes int64   `json:"size,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	Duration  float64 `json:"duration,omitempty"`
}

type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ParentID  string `json:"parent_id,omitempty"`
	IsTrash   bool   `json:"is_trash"`
	CreatedTS int64  `json:"created_ts,omitempty"`
	UpdatedTS int64  `json:"updated_ts,omitempty"`
}
