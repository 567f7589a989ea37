package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type mockRepo struct {
	create             func(ctx context.Context, userID string, fields domain.PostFields, status domain.PostStatus) (*domain.Post, error)
	getOwner           func(ctx context.Context, id uuid.UUID) (string, error)
	getForOwner        func(ctx context.Context, id uuid.UUID, userID string) (*domain.Post, error)
	update             func(ctx context.Context, id uuid.UUID, fields domain.PostFields) (*domain.Post, error)
	updateStatus       func(ctx context.Context, id uuid.UUID, status domain.PostStatus) (*domain.Post, error)
	delete             func(ctx context.Context, id uuid.UUID) error
	listByOwner        func(ctx context.Context, userID string) ([]*domain.Post, error)
	listPublished      func(ctx context.Context) ([]*domain.Post, error)
	getPublishedBySlug func(ctx context.Context, slug string) (*domain.Post, error)
}

func (m *mockRepo) Health(context.Context) error { return nil }

func (m *mockRepo) Create(ctx context.Context, userID string, fields domain.PostFields, status domain.PostStatus) (*domain.Post, error) {
	return m.create(ctx, userID, fields, status)
}

func (m *mockRepo) GetOwner(ctx context.Context, id uuid.UUID) (string, error) {
	return m.getOwner(ctx, id)
}

func (m *mockRepo) GetForOwner(ctx context.Context, id uuid.UUID, userID string) (*domain.Post, error) {
	return m.getForOwner(ctx, id, userID)
}

func (m *mockRepo) Update(ctx context.Context, id uuid.UUID, fields domain.PostFields) (*domain.Post, error) {
	return m.update(ctx, id, fields)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PostStatus) (*domain.Post, error) {
	return m.updateStatus(ctx, id, status)
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

func (m *mockRepo) ListByOwner(ctx context.Context, userID string) ([]*domain.Post, error) {
	return m.listByOwner(ctx, userID)
}

func (m *mockRepo) ListPublished(ctx context.Context) ([]*domain.Post, error) {
	return m.listPublished(ctx)
}

func (m *mockRepo) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return m.getPublishedBySlug(ctx, slug)
}

// staticAuth resolves every request to user, or fails when user is nil.
type staticAuth struct {
	user *domain.User
}

func (a staticAuth) CurrentUser(context.Context) (*domain.User, error) {
	if a.user == nil {
		return nil, domain.NewUnauthorizedError("")
	}
	return a.user, nil
}

type recordingViews struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (v *recordingViews) Revalidate(_ context.Context, path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.paths = append(v.paths, path)
	return v.err
}

type recordingEvents struct {
	published []ports.PostPublished
	err       error
}

func (e *recordingEvents) PublishPostPublished(_ context.Context, ev ports.PostPublished) error {
	e.published = append(e.published, ev)
	return e.err
}

type mockAI struct {
	calls    int
	generate func(ctx context.Context, prompt string) (string, error)
}

func (m *mockAI) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	return m.generate(ctx, prompt)
}

type mockRenderer struct {
	render func(src []byte) (ports.RenderedMarkdown, error)
}

func (m mockRenderer) Render(src []byte) (ports.RenderedMarkdown, error) {
	return m.render(src)
}

type mockIdentity struct {
	calls  int
	signUp func(ctx context.Context, creds ports.Credentials) (*domain.Session, error)
	signIn func(ctx context.Context, creds ports.Credentials) (*domain.Session, error)
}

func (m *mockIdentity) SignUp(ctx context.Context, creds ports.Credentials) (*domain.Session, error) {
	m.calls++
	return m.signUp(ctx, creds)
}

func (m *mockIdentity) SignIn(ctx context.Context, creds ports.Credentials) (*domain.Session, error) {
	m.calls++
	return m.signIn(ctx, creds)
}

type healthFunc func(ctx context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }
