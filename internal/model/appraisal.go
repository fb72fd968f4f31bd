package model

import "time"

// Appraisal is a self-appraisal record. Records are append-only.
//
// Date is the caller supplied YYYY-MM-DD string and is never parsed.
// ImageURL is either empty or the signed URL returned by the object store.
type Appraisal struct {
	ID          string    `json:"id,omitempty" firestore:"-"`
	UID         string    `json:"uid" firestore:"uid"`
	Title       string    `json:"title" firestore:"title"`
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Date        string    `json:"date" firestore:"date"`
	ImageURL    string    `json:"imageUrl" firestore:"imageUrl"`
	SubmittedAt time.Time `json:"submittedAt" firestore:"submittedAt"`
}

// UploadedImage is a proof image received with a submission.
// It lives only for the duration of one request.
type UploadedImage struct {
	Data        []byte
	Filename    string
	ContentType string
}
