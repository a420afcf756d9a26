package cli

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dropsite-io/dropsite-cli/internal/auth"
	"github.com/dropsite-io/dropsite-cli/internal/cloud/dropsite"
	testutils "github.com/dropsite-io/dropsite-cli/internal/utils/test"
	"github.com/dropsite-io/dropsite-cli/internal/utils/test/assert"
	"github.com/dropsite-io/dropsite-cli/internal/utils/test/mock"

	"github.com/AlecAivazis/survey/v2"
)

func newTestSession(t *testing.T, ui mock.UI, client mock.DropsiteClient) (*Session, string) {
	t.Helper()

	tmpDir := testutils.TempDir(t, "session")

	downloadsDir := filepath.Join(tmpDir, "downloads")
	assert.Nil(t, os.MkdirAll(downloadsDir, 0755))

	session := NewSession(ui, client, auth.NewStore(filepath.Join(tmpDir, auth.FileName)), downloadsDir)
	session.sleep = func(time.Duration) {}
	return session, downloadsDir
}

func siteAnswers(name, password string) func(answer interface{}, questions ...*survey.Question) error {
	return func(answer interface{}, questions ...*survey.Question) error {
		inputs := answer.(*siteInputs)
		inputs.Name = name
		inputs.Password = password
		return nil
	}
}

func TestCreateSite(t *testing.T) {
	t.Run("should persist the credential and return to the main menu on success", func(t *testing.T) {
		client := mock.DropsiteClient{
			CreateSiteFn: func(name, password string) (dropsite.AuthResponse, error) {
				assert.Equal(t, "demo", name)
				assert.Equal(t, "pw", password)
				return dropsite.AuthResponse{AuthToken: "abc"}, nil
			},
		}

		out, ui := mock.NewUI()
		ui.AskFn = siteAnswers("demo", "pw")

		session, _ := newTestSession(t, ui, client)

		next, err := session.showCreateSite()
		assert.Nil(t, err)
		assert.Equal(t, screenMainMenu, next)

		token, loadErr := session.creds.Load()
		assert.Nil(t, loadErr)
		assert.Equal(t, "abc", token)

		assert.True(t, strings.Contains(out.String(), `Site "demo" created`), "expected a success message, got: %s", out.String())
	})

	t.Run("should not create the site when replacing the saved credential is declined", func(t *testing.T) {
		client := mock.DropsiteClient{
			CreateSiteFn: func(name, password string) (dropsite.AuthResponse, error) {
				t.Fatal("expected no site to be created")
				return dropsite.AuthResponse{}, nil
			},
		}

		_, ui := mock.NewUI()
		ui.AskFn = siteAnswers("demo", "pw")
		ui.ConfirmFn = func(format string, args ...interface{}) (bool, error) { return false, nil }

		session, _ := newTestSession(t, ui, client)
		assert.Nil(t, session.creds.Save("existing"))

		next, err := session.showCreateSite()
		assert.Nil(t, err)
		assert.Equal(t, screenMainMenu, next)

		token, loadErr := session.creds.Load()
		assert.Nil(t, loadErr)
		assert.Equal(t, "existing", token)
	})

	t.Run("should surface a conflict error without persisting a credential", func(t *testing.T) {
		client := mock.DropsiteClient{
			CreateSiteFn: func(name, password string) (dropsite.AuthResponse, error) {
				return dropsite.AuthResponse{}, dropsite.ErrSiteTaken{Name: name}
			},
		}

		_, ui := mock.NewUI()
		ui.AskFn = siteAnswers("demo", "pw")

		session, _ := newTestSession(t, ui, client)

		next, err := session.showCreateSite()
		assert.Equal(t, dropsite.ErrSiteTaken{Name: "demo"}, err)
		assert.Equal(t, screenMainMenu, next)

		_, loadErr := session.creds.Load()
		assert.Equal(t, auth.ErrMissingCredentials, loadErr)
	})
}

func TestAccessSite(t *testing.T) {
	t.Run("should persist the credential and enter the file manager on success", func(t *testing.T) {
		client := mock.DropsiteClient{
			SiteFn: func(name, password string) (dropsite.SiteResponse, error) {
				assert.Equal(t, "demo", name)
				assert.Equal(t, "pw", password)
				return dropsite.SiteResponse{
					AuthToken: "abc",
					Files:     []dropsite.File{{ID: 1, FileName: "a.txt"}},
				}, nil
			},
		}

		_, ui := mock.NewUI()
		ui.AskFn = siteAnswers("demo", "pw")

		session, _ := newTestSession(t, ui, client)

		next, err := session.showAccessSite()
		assert.Nil(t, err)
		assert.Equal(t, screenFileManager, next)

		token, loadErr := session.creds.Load()
		assert.Nil(t, loadErr)
		assert.Equal(t, "abc", token)

		assert.Equal(t, "demo", session.site)
		assert.Equal(t, "pw", session.password)
		assert.Match(t, []dropsite.File{{ID: 1, FileName: "a.txt"}}, session.files)
	})

	t.Run("should surface a not found error without persisting a credential", func(t *testing.T) {
		client := mock.DropsiteClient{
			SiteFn: func(name, password string) (dropsite.SiteResponse, error) {
				return dropsite.SiteResponse{}, dropsite.ErrSiteNotFound{Name: name}
			},
		}

		_, ui := mock.NewUI()
		ui.AskFn = siteAnswers("demo", "pw")

		session, _ := newTestSession(t, ui, client)

		next, err := session.showAccessSite()
		assert.Equal(t, dropsite.ErrSiteNotFound{Name: "demo"}, err)
		assert.Equal(t, screenMainMenu, next)

		_, loadErr := session.creds.Load()
		assert.Equal(t, auth.ErrMissingCredentials, loadErr)
	})

	t.Run("should surface an invalid password error without persisting a credential", func(t *testing.T) {
		client := mock.DropsiteClient{
			SiteFn: func(name, password string) (dropsite.SiteResponse, error) {
				return dropsite.SiteResponse{}, dropsite.ErrInvalidPassword{}
			},
		}

		_, ui := mock.NewUI()
		ui.AskFn = siteAnswers("demo", "pw")

		session, _ := newTestSession(t, ui, client)

		next, err := session.showAccessSite()
		assert.Equal(t, dropsite.ErrInvalidPassword{}, err)
		assert.Equal(t, screenMainMenu, next)

		_, loadErr := session.creds.Load()
		assert.Equal(t, auth.ErrMissingCredentials, loadErr)
	})
}

func TestFileManager(t *testing.T) {
	selectAnswers := func(t *testing.T, answers map[string]int) func(prompt survey.Prompt, answer interface{}) error {
		return func(prompt survey.Prompt, answer interface{}) error {
			sel, ok := prompt.(*survey.Select)
			if !ok {
				t.Fatalf("expected a select prompt, got %T", prompt)
			}
			idx, ok := answers[sel.Message]
			if !ok {
				t.Fatalf("unexpected prompt: %s", sel.Message)
			}
			*(answer.(*int)) = idx
			return nil
		}
	}

	t.Run("should render an empty state and treat download as a no-op with no files", func(t *testing.T) {
		out, ui := mock.NewUI()
		ui.AskOneFn = selectAnswers(t, map[string]int{"Choose an action": 1})

		session, _ := newTestSession(t, ui, mock.DropsiteClient{})
		session.site = "demo"
		session.password = "pw"

		next, err := session.showFileManager()
		assert.Nil(t, err)
		assert.Equal(t, screenFileManager, next)

		assert.True(t, strings.Contains(out.String(), "(no files uploaded yet)"), "expected an empty state message, got: %s", out.String())
		assert.True(t, strings.Contains(out.String(), "no files to download yet"), "expected a download warning, got: %s", out.String())
	})

	t.Run("should download the selected file into the downloads directory", func(t *testing.T) {
		files := []dropsite.File{{ID: 1, FileName: "a.txt"}}

		client := mock.DropsiteClient{
			DownloadFn: func(fileID int64, authToken string) ([]byte, error) {
				assert.Equal(t, int64(1), fileID)
				assert.Equal(t, "abc", authToken)
				return []byte("file contents"), nil
			},
			SiteFn: func(name, password string) (dropsite.SiteResponse, error) {
				return dropsite.SiteResponse{AuthToken: "abc", Files: files}, nil
			},
		}

		_, ui := mock.NewUI()
		ui.AskOneFn = selectAnswers(t, map[string]int{
			"Choose an action":                       1,
			"Which file would you like to download?": 0,
		})

		session, downloadsDir := newTestSession(t, ui, client)
		session.site = "demo"
		session.password = "pw"
		session.files = files
		assert.Nil(t, session.creds.Save("abc"))

		next, err := session.showFileManager()
		assert.Nil(t, err)
		assert.Equal(t, screenFileManager, next)

		data, readErr := ioutil.ReadFile(filepath.Join(downloadsDir, "a.txt"))
		assert.Nil(t, readErr)
		assert.Equal(t, "file contents", string(data))
	})

	t.Run("should upload a file and refresh the file list", func(t *testing.T) {
		path := filepath.Join(testutils.TempDir(t, "uploads"), "b.txt")
		assert.Nil(t, ioutil.WriteFile(path, []byte("hello"), 0644))

		uploaded := false
		refreshed := []dropsite.File{{ID: 1, FileName: "a.txt"}, {ID: 2, FileName: "b.txt"}}

		client := mock.DropsiteClient{
			UploadFn: func(siteName, authToken, uploadPath string) error {
				assert.Equal(t, "demo", siteName)
				assert.Equal(t, "abc", authToken)
				assert.Equal(t, path, uploadPath)
				uploaded = true
				return nil
			},
			SiteFn: func(name, password string) (dropsite.SiteResponse, error) {
				assert.Equal(t, "demo", name)
				assert.Equal(t, "pw", password)
				return dropsite.SiteResponse{AuthToken: "abc", Files: refreshed}, nil
			},
		}

		_, ui := mock.NewUI()
		ui.AskOneFn = selectAnswers(t, map[string]int{"Choose an action": 0})
		ui.AskFn = func(answer interface{}, questions ...*survey.Question) error {
			answer.(*uploadInputs).Path = path
			return nil
		}

		session, _ := newTestSession(t, ui, client)
		session.site = "demo"
		session.password = "pw"
		assert.Nil(t, session.creds.Save("abc"))

		next, err := session.showFileManager()
		assert.Nil(t, err)
		assert.Equal(t, screenFileManager, next)
		assert.True(t, uploaded, "expected the file to be uploaded")
		assert.Match(t, refreshed, session.files)
	})

	t.Run("should reject an upload of a missing file without calling the service", func(t *testing.T) {
		client := mock.DropsiteClient{
			UploadFn: func(siteName, authToken, uploadPath string) error {
				t.Fatal("expected no upload to be attempted")
				return nil
			},
		}

		out, ui := mock.NewUI()
		ui.AskOneFn = selectAnswers(t, map[string]int{"Choose an action": 0})
		ui.AskFn = func(answer interface{}, questions ...*survey.Question) error {
			answer.(*uploadInputs).Path = "/definitely/does/not/exist.txt"
			return nil
		}

		session, _ := newTestSession(t, ui, client)
		session.site = "demo"
		session.password = "pw"
		assert.Nil(t, session.creds.Save("abc"))

		next, err := session.showFileManager()
		assert.Nil(t, err)
		assert.Equal(t, screenFileManager, next)
		assert.True(t, strings.Contains(out.String(), "no file found"), "expected a validation error, got: %s", out.String())
	})

	t.Run("should abort an upload when no credential is saved", func(t *testing.T) {
		path := filepath.Join(testutils.TempDir(t, "uploads"), "c.txt")
		assert.Nil(t, ioutil.WriteFile(path, []byte("hello"), 0644))

		client := mock.DropsiteClient{
			UploadFn: func(siteName, authToken, uploadPath string) error {
				t.Fatal("expected no upload to be attempted")
				return nil
			},
		}

		out, ui := mock.NewUI()
		ui.AskOneFn = selectAnswers(t, map[string]int{"Choose an action": 0})
		ui.AskFn = func(answer interface{}, questions ...*survey.Question) error {
			answer.(*uploadInputs).Path = path
			return nil
		}

		session, _ := newTestSession(t, ui, client)
		session.site = "demo"
		session.password = "pw"

		next, err := session.showFileManager()
		assert.Nil(t, err)
		assert.Equal(t, screenFileManager, next)
		assert.True(t, strings.Contains(out.String(), "no saved credential"), "expected a credential error, got: %s", out.String())
	})
}

func TestSessionRun(t *testing.T) {
	t.Run("should exit from the main menu", func(t *testing.T) {
		out, ui := mock.NewUI()
		ui.AskOneFn = func(prompt survey.Prompt, answer interface{}) error {
			*(answer.(*int)) = 2 // Exit
			return nil
		}

		session, _ := newTestSession(t, ui, mock.DropsiteClient{})
		assert.Nil(t, session.Run())
		assert.True(t, strings.Contains(out.String(), "Goodbye!"), "expected a farewell message, got: %s", out.String())
	})

	t.Run("should pause on an error and return to the main menu", func(t *testing.T) {
		client := mock.DropsiteClient{
			SiteFn: func(name, password string) (dropsite.SiteResponse, error) {
				return dropsite.SiteResponse{}, dropsite.ErrSiteNotFound{Name: name}
			},
		}

		prompts := 0
		out, ui := mock.NewUI()
		ui.AskOneFn = func(prompt survey.Prompt, answer interface{}) error {
			prompts++
			if prompts == 1 {
				*(answer.(*int)) = 0 // Access an existing site
			} else {
				*(answer.(*int)) = 2 // Exit
			}
			return nil
		}
		ui.AskFn = siteAnswers("demo", "pw")

		var slept []time.Duration
		session, _ := newTestSession(t, ui, client)
		session.sleep = func(d time.Duration) { slept = append(slept, d) }

		assert.Nil(t, session.Run())
		assert.Match(t, []time.Duration{errPause}, slept)
		assert.True(t, strings.Contains(out.String(), "no site found"), "expected the error to be printed, got: %s", out.String())
	})
}
