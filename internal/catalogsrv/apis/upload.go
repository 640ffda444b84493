package apis

import (
	"net/http"

	"campussrv/internal/catalogsrv/upload"
	"campussrv/internal/common/httpx"
)

type uploadResponse struct {
	URL string `json:"url"`
}

// uploadImage stores an image from a multipart form and returns the
// public path it is served under.
func uploadImage(r *http.Request) (*httpx.Response, error) {
	store := upload.NewStore()
	publicPath, appErr := store.FromRequest(r)
	if appErr != nil {
		return nil, appErr
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   publicPath,
		Response:   uploadResponse{URL: publicPath},
	}, nil
}
