package usecase

// UploadedFile is a multipart file staged on local disk. The delivery layer
// owns the staging file and removes it when the request ends.
type UploadedFile struct {
	Path         string
	OriginalName string
	ContentType  string
	Size         int64
}

// FileFailure reports one file of a batch that could not be uploaded.
type FileFailure struct {
	FileName string `json:"fileName"`
	Reason   string `json:"reason"`
}

// DeleteOutcome is the result of a best-effort remote delete.
type DeleteOutcome struct {
	Handle string
	Err    error
}

// Failed filters the outcomes that carry an error.
func Failed(outcomes []DeleteOutcome) []DeleteOutcome {
	var failed []DeleteOutcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}

	return failed
}
