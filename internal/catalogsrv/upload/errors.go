package upload

import (
	"net/http"

	"campussrv/internal/common/apperrors"
)

var (
	ErrUploadError apperrors.Error = apperrors.New("upload failed").SetStatusCode(http.StatusInternalServerError)

	ErrNoFile       apperrors.Error = ErrUploadError.New("no file provided").SetStatusCode(http.StatusBadRequest)
	ErrFileTooLarge apperrors.Error = ErrUploadError.New("file exceeds maximum upload size").SetStatusCode(http.StatusRequestEntityTooLarge)
	ErrSaveFailed   apperrors.Error = ErrUploadError.New("unable to save file").SetStatusCode(http.StatusInternalServerError)
)
