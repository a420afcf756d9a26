package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	envPrefix   = "dropsite"
	profileType = "yaml"

	downloadsDirName = "dropsite"

	defaultBaseURL = "https://api.dropsite.io"
)

// set of supported CLI profile keys
const (
	keyBaseURL      = "base_url"
	keyDownloadsDir = "downloads_dir"
)

// Profile is the CLI profile
type Profile struct {
	Name string

	dir string
	fs  afero.Fs

	baseURL string // --base-url flag override
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %s", dirErr)
	}

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   afero.NewOsFs(),
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(profileType)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := viper.WriteConfigAs(p.path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

func (p Profile) path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, profileType)
}

// BaseURL returns the dropsite server base URL,
// preferring the flag override, then the profile, then the production default
func (p Profile) BaseURL() string {
	if p.baseURL != "" {
		return p.baseURL
	}
	if url := p.GetString(keyBaseURL); url != "" {
		return url
	}
	return defaultBaseURL
}

// SetBaseURL sets the dropsite server base URL
func (p Profile) SetBaseURL(url string) {
	p.SetString(keyBaseURL, url)
}

// DownloadsDir returns the directory downloaded files are written to,
// preferring the profile over the default of Downloads/dropsite under the user's home
func (p Profile) DownloadsDir() (string, error) {
	if dir := p.GetString(keyDownloadsDir); dir != "" {
		return dir, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads", downloadsDirName), nil
}
