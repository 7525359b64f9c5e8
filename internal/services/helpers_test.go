package services_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/email"
	"nextignition_backend/internal/imageprocessor"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/services"
	"nextignition_backend/internal/storage"
	"nextignition_backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// recordingProvider запоминает отправленные письма
type recordingProvider struct {
	mu    sync.Mutex
	sent  []sentEmail
	fails bool
}

type sentEmail struct {
	To       []string
	Template string
	Data     email.TemplateData
}

func (p *recordingProvider) Send(*email.Email) error { return nil }

func (p *recordingProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, sentEmail{To: to, Template: templateName, Data: data})
	if p.fails {
		return errSMTPDown
	}
	return nil
}

func (p *recordingProvider) Validate() error { return nil }
func (p *recordingProvider) Close() error    { return nil }

func (p *recordingProvider) Sent() []sentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]sentEmail, len(p.sent))
	copy(out, p.sent)
	return out
}

var errSMTPDown = errors.New("smtp down")

type fixture struct {
	db      *gorm.DB
	svc     *services.ServiceContainer
	tokens  *auth.TokenManager
	mail    *recordingProvider
	storage *storage.LocalStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	local, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:5000/files",
	})
	require.NoError(t, err)

	tokens := auth.NewTokenManager(testSecret, time.Hour, "nextignition")
	mail := &recordingProvider{}

	svc := services.NewServiceContainer(services.Dependencies{
		Tokens:    tokens,
		Storage:   local,
		Processor: imageprocessor.NewProcessor(85),
		Email:     mail,
		Avatar:    services.AvatarConfig{MaxSize: 1 << 20, Side: 64},
	})
	t.Cleanup(svc.Notifier.Wait)

	return &fixture{db: db, svc: svc, tokens: tokens, mail: mail, storage: local}
}

func subjectOf(u *models.User) auth.Subject {
	return auth.Subject{UserID: u.ID, Role: u.Role}
}

// fileHeader собирает *multipart.FileHeader так же, как его видит gin
func fileHeader(t *testing.T, field, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}
