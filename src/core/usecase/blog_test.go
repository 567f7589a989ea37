package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/src/core/domain"
	"inkpress/src/core/ports"
)

func echoRenderer() mockRenderer {
	return mockRenderer{render: func(src []byte) (ports.RenderedMarkdown, error) {
		return ports.RenderedMarkdown{
			HTML:     "<p>" + string(src) + "</p>",
			Excerpt:  string(src),
			Headings: []ports.Heading{{Level: 1, ID: "intro", Text: "Intro"}},
		}, nil
	}}
}

func TestListPublished(t *testing.T) {
	repo := &mockRepo{listPublished: func(context.Context) ([]*domain.Post, error) {
		return []*domain.Post{
			samplePost(alice.ID, domain.StatusPublished),
			samplePost(alice.ID, domain.StatusDraft),
		}, nil
	}}
	svc := NewBlogService(repo, echoRenderer(), nopLogger())

	posts, err := svc.ListPublished(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].Post.IsPublished())
	assert.Equal(t, "Body", posts[0].Excerpt)
}

func TestListPublishedStoreFailure(t *testing.T) {
	repo := &mockRepo{listPublished: func(context.Context) ([]*domain.Post, error) {
		return nil, errors.New("down")
	}}
	svc := NewBlogService(repo, echoRenderer(), nopLogger())

	_, err := svc.ListPublished(context.Background())

	assert.Equal(t, domain.KindDatabase, domain.KindOf(err))
}

func TestGetPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("renders a published post", func(t *testing.T) {
		repo := &mockRepo{getPublishedBySlug: func(_ context.Context, slug string) (*domain.Post, error) {
			assert.Equal(t, "hello", slug)
			return samplePost(alice.ID, domain.StatusPublished), nil
		}}
		svc := NewBlogService(repo, echoRenderer(), nopLogger())

		post, err := svc.GetPublished(ctx, "hello")

		require.NoError(t, err)
		assert.Equal(t, "<p>Body</p>", post.HTML)
		assert.Len(t, post.Headings, 1)
	})

	t.Run("never returns drafts", func(t *testing.T) {
		repo := &mockRepo{getPublishedBySlug: func(context.Context, string) (*domain.Post, error) {
			return samplePost(alice.ID, domain.StatusDraft), nil
		}}
		svc := NewBlogService(repo, echoRenderer(), nopLogger())

		_, err := svc.GetPublished(ctx, "hello")

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("invalid slug is not looked up", func(t *testing.T) {
		repo := &mockRepo{getPublishedBySlug: func(context.Context, string) (*domain.Post, error) {
			t.Fatal("repository must not be called")
			return nil, nil
		}}
		svc := NewBlogService(repo, echoRenderer(), nopLogger())

		_, err := svc.GetPublished(ctx, "Not A Slug")

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("post without content", func(t *testing.T) {
		repo := &mockRepo{getPublishedBySlug: func(context.Context, string) (*domain.Post, error) {
			p := samplePost(alice.ID, domain.StatusPublished)
			p.Content = nil
			return p, nil
		}}
		svc := NewBlogService(repo, echoRenderer(), nopLogger())

		post, err := svc.GetPublished(ctx, "hello")

		require.NoError(t, err)
		assert.Empty(t, post.HTML)
	})
}
