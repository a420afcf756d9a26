package dropsite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dropsite-io/dropsite-cli/internal/utils/api"
)

type createSitePayload struct {
	SiteName string `json:"site_name"`
	Password string `json:"password"`
}

// AuthResponse is the response payload of a successful site creation,
// containing the bearer token for subsequent file operations
type AuthResponse struct {
	AuthToken string `json:"auth_token"`
}

// SiteResponse is the response payload of a successful site access,
// containing the bearer token along with the site's current files
type SiteResponse struct {
	AuthToken string `json:"auth_token"`
	Files     []File `json:"files"`
}

func (c *client) CreateSite(name, password string) (AuthResponse, error) {
	res, resErr := c.doJSON(http.MethodPost, createSitePath, createSitePayload{name, password}, api.RequestOptions{})
	if resErr != nil {
		return AuthResponse{}, resErr
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		err := parseResponseError(res)
		if res.StatusCode >= 400 && res.StatusCode < 500 {
			return AuthResponse{}, ErrSiteTaken{name}
		}
		return AuthResponse{}, err
	}

	dec := json.NewDecoder(res.Body)
	defer res.Body.Close()

	var auth AuthResponse
	if err := dec.Decode(&auth); err != nil {
		return AuthResponse{}, err
	}
	return auth, nil
}

func (c *client) Site(name, password string) (SiteResponse, error) {
	res, resErr := c.do(
		http.MethodGet,
		fmt.Sprintf(sitePathPattern, url.PathEscape(name)),
		api.RequestOptions{Query: map[string]string{queryPassword: password}},
	)
	if resErr != nil {
		return SiteResponse{}, resErr
	}

	switch {
	case res.StatusCode >= 200 && res.StatusCode <= 299:
	case res.StatusCode == http.StatusNotFound:
		defer res.Body.Close()
		return SiteResponse{}, ErrSiteNotFound{name}
	case res.StatusCode == http.StatusUnauthorized:
		defer res.Body.Close()
		return SiteResponse{}, ErrInvalidPassword{}
	default:
		return SiteResponse{}, parseResponseError(res)
	}

	dec := json.NewDecoder(res.Body)
	defer res.Body.Close()

	var site SiteResponse
	if err := dec.Decode(&site); err != nil {
		return SiteResponse{}, err
	}
	return site, nil
}
