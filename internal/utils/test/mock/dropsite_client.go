package mock

import (
	"github.com/dropsite-io/dropsite-cli/internal/cloud/dropsite"
)

// DropsiteClient is a mocked dropsite client
type DropsiteClient struct {
	dropsite.Client
	CreateSiteFn func(name, password string) (dropsite.AuthResponse, error)
	SiteFn       func(name, password string) (dropsite.SiteResponse, error)
	UploadFn     func(siteName, authToken, path string) error
	DownloadFn   func(fileID int64, authToken string) ([]byte, error)
}

// CreateSite calls the mocked CreateSite implementation if provided,
// otherwise the call falls back to the underlying dropsite.Client implementation.
// NOTE: this may panic if the underlying dropsite.Client is left undefined
func (dc DropsiteClient) CreateSite(name, password string) (dropsite.AuthResponse, error) {
	if dc.CreateSiteFn != nil {
		return dc.CreateSiteFn(name, password)
	}
	return dc.Client.CreateSite(name, password)
}

// Site calls the mocked Site implementation if provided,
// otherwise the call falls back to the underlying dropsite.Client implementation.
// NOTE: this may panic if the underlying dropsite.Client is left undefined
func (dc DropsiteClient) Site(name, password string) (dropsite.SiteResponse, error) {
	if dc.SiteFn != nil {
		return dc.SiteFn(name, password)
	}
	return dc.Client.Site(name, password)
}

// Upload calls the mocked Upload implementation if provided,
// otherwise the call falls back to the underlying dropsite.Client implementation.
// NOTE: this may panic if the underlying dropsite.Client is left undefined
func (dc DropsiteClient) Upload(siteName, authToken, path string) error {
	if dc.UploadFn != nil {
		return dc.UploadFn(siteName, authToken, path)
	}
	return dc.Client.Upload(siteName, authToken, path)
}

// Download calls the mocked Download implementation if provided,
// otherwise the call falls back to the underlying dropsite.Client implementation.
// NOTE: this may panic if the underlying dropsite.Client is left undefined
func (dc DropsiteClient) Download(fileID int64, authToken string) ([]byte, error) {
	if dc.DownloadFn != nil {
		return dc.DownloadFn(fileID, authToken)
	}
	return dc.Client.Download(fileID, authToken)
}
