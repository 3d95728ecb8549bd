package models

import "time"

// Document is a file attached to a trip (BOL, rate confirmation, POD scan).
// Content lives in the blob column of trip_documents; metadata is listed
// without pulling the blob.
type Document struct {
	ID          int64     `json:"id"`
	TripID      string    `json:"tripId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	UploadedBy  string    `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
