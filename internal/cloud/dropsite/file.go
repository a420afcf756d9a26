package dropsite

import (
	"fmt"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dropsite-io/dropsite-cli/internal/utils/api"
)

// File is a file stored on a dropsite site
type File struct {
	ID       int64  `json:"id"`
	FileName string `json:"file_name"`
}

func (c *client) Upload(siteName, authToken, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Construct a pipe stream: the reader side will be consumed and sent as the body
	// of the outgoing request, and the writer side we can use to asynchronously populate it.
	pipeReader, pipeWriter := io.Pipe()

	bodyWriter := multipart.NewWriter(pipeWriter)

	go func() {
		fw, err := bodyWriter.CreateFormFile(paramFile, filepath.Base(path))
		if err != nil {
			pipeWriter.CloseWithError(fmt.Errorf("failed to create file multipart field: %w", err))
			return
		}

		if _, err := io.Copy(fw, file); err != nil {
			pipeWriter.CloseWithError(fmt.Errorf("failed to write file to body: %w", err))
			return
		}

		bodyWriter.Close()
		pipeWriter.Close()
	}()

	res, resErr := c.do(
		http.MethodPost,
		fmt.Sprintf(uploadPathPattern, url.PathEscape(siteName)),
		api.RequestOptions{
			Body:        pipeReader,
			ContentType: bodyWriter.FormDataContentType(),
			AuthToken:   authToken,
		},
	)
	if resErr != nil {
		return resErr
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return parseResponseError(res)
	}
	return res.Body.Close()
}

func (c *client) Download(fileID int64, authToken string) ([]byte, error) {
	res, resErr := c.do(
		http.MethodGet,
		fmt.Sprintf(getFilePathPattern, fileID),
		api.RequestOptions{AuthToken: authToken},
	)
	if resErr != nil {
		return nil, resErr
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, parseResponseError(res)
	}

	defer res.Body.Close()
	return ioutil.ReadAll(res.Body)
}
