package handlers

import "gasops/internal/upload"

// RecordHandler groups the record-creation endpoints that take file
// attachments; the Saver is built from config at startup and injected
// here instead of living in a package global.
type RecordHandler struct {
	Uploads *upload.Saver
}

func NewRecordHandler(up *upload.Saver) *RecordHandler {
	return &RecordHandler{Uploads: up}
}
